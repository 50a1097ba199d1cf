package services

import (
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

// DayGroup is one public schedule section: a day of the week and its
// services in sort order.
type DayGroup struct {
	Day     string
	Entries []models.ServiceSchedule
}

// ActiveSchedules returns the rows the public page displays, ordered for
// grouping.
func ActiveSchedules() ([]models.ServiceSchedule, error) {
	var list []models.ServiceSchedule
	err := db.Conn().Where("is_active = ?", true).
		Order("sort_order asc, id asc").Find(&list).Error
	return list, err
}

// GroupSchedules buckets schedules by the fixed day-of-week enumeration, in
// week order. Days without services produce no group.
func GroupSchedules(list []models.ServiceSchedule) []DayGroup {
	byDay := make(map[string][]models.ServiceSchedule, len(models.DaysOfWeek))
	for _, s := range list {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}
	groups := make([]DayGroup, 0, len(byDay))
	for _, day := range models.DaysOfWeek {
		if entries, ok := byDay[day]; ok {
			groups = append(groups, DayGroup{Day: day, Entries: entries})
		}
	}
	return groups
}
