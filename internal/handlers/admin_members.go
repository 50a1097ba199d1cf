package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

// AdminMembers lists registered members with an optional congregation
// filter.
func AdminMembers(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selected := r.URL.Query().Get("congregation")

		q := db.Conn().Order("full_name asc")
		if selected != "" && selected != "all" {
			q = q.Where("congregation = ?", selected)
		}
		var members []models.Member
		if err := q.Find(&members).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}

		render(w, t, "admin/members.tmpl", map[string]any{
			"Title":         "Admin • Membros",
			"Members":       members,
			"Congregations": models.Congregations,
			"Labels":        models.CongregationLabels,
			"Selected":      selected,
			"Flash":         MakeFlash(r),
		})
	}
}

// POST /admin/members/{id}/delete
func AdminMemberDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := db.Conn().Delete(&models.Member{}, "id = ?", id).Error; err != nil {
		http.Redirect(w, r, "/admin/members?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/members?ok=deleted", http.StatusSeeOther)
}
