package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

// AdminReports aggregates the fetched member list in memory: gender counts,
// average age, age buckets, and a per-congregation table.
func AdminReports(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var members []models.Member
		if err := db.Conn().Find(&members).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}

		selected := r.URL.Query().Get("congregation")
		filtered := members
		if selected != "" && selected != "all" {
			filtered = filtered[:0:0]
			for _, m := range members {
				if m.Congregation == selected {
					filtered = append(filtered, m)
				}
			}
		}

		now := time.Now()
		render(w, t, "admin/reports.tmpl", map[string]any{
			"Title":         "Admin • Relatórios",
			"Stats":         svc.ComputeStats(filtered, now),
			"Breakdown":     svc.CongregationBreakdown(members, now),
			"Congregations": models.Congregations,
			"Labels":        models.CongregationLabels,
			"Selected":      selected,
		})
	}
}
