package services

import (
	"math"
	"time"

	"github.com/adtc/araporanga/internal/models"
)

// MemberStats aggregates an already-fetched member list in memory; nothing
// here touches the store.
type MemberStats struct {
	Total      int
	Male       int
	Female     int
	AverageAge int

	Age0to17  int
	Age18to35 int
	Age36to60 int
	Age61Plus int
}

// CongregationStats is one row of the per-congregation report table.
type CongregationStats struct {
	Congregation string
	Name         string
	Total        int
	Male         int
	Female       int
	AverageAge   int
}

// ComputeStats derives the report numbers for a member slice. Members
// without a birth date count toward totals but not toward ages.
func ComputeStats(members []models.Member, now time.Time) MemberStats {
	st := MemberStats{Total: len(members)}
	ageSum, aged := 0, 0
	for _, m := range members {
		switch m.Gender {
		case "masculino":
			st.Male++
		case "feminino":
			st.Female++
		}
		if m.BirthDate == nil {
			continue
		}
		age := now.Year() - m.BirthDate.Year()
		ageSum += age
		aged++
		switch {
		case age <= 17:
			st.Age0to17++
		case age <= 35:
			st.Age18to35++
		case age <= 60:
			st.Age36to60++
		default:
			st.Age61Plus++
		}
	}
	if aged > 0 {
		st.AverageAge = int(math.Round(float64(ageSum) / float64(aged)))
	}
	return st
}

// CongregationBreakdown reports per-congregation rows in the fixed
// congregation order, including empty ones.
func CongregationBreakdown(members []models.Member, now time.Time) []CongregationStats {
	rows := make([]CongregationStats, 0, len(models.Congregations))
	for _, key := range models.Congregations {
		var subset []models.Member
		for _, m := range members {
			if m.Congregation == key {
				subset = append(subset, m)
			}
		}
		st := ComputeStats(subset, now)
		rows = append(rows, CongregationStats{
			Congregation: key,
			Name:         models.CongregationLabels[key],
			Total:        st.Total,
			Male:         st.Male,
			Female:       st.Female,
			AverageAge:   st.AverageAge,
		})
	}
	return rows
}
