package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

// AdminSchedules lists all schedule rows, active and deactivated.
func AdminSchedules(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var list []models.ServiceSchedule
		if err := db.Conn().Order("is_active desc, sort_order asc, id asc").Find(&list).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "admin/schedules.tmpl", map[string]any{
			"Title":     "Admin • Horários de Culto",
			"Schedules": list,
			"Days":      models.DaysOfWeek,
			"Flash":     MakeFlash(r),
		})
	}
}

// GET /admin/schedules/{id}/edit
func AdminScheduleEditForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s models.ServiceSchedule
		if err := db.Conn().First(&s, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
			http.Redirect(w, r, "/admin/schedules?error=not_found", http.StatusSeeOther)
			return
		}
		render(w, t, "admin/schedules_edit.tmpl", map[string]any{
			"Title":    "Admin • Editar Horário",
			"Schedule": s,
			"Days":     models.DaysOfWeek,
		})
	}
}

// POST /admin/schedules
func AdminScheduleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s, key := scheduleFromForm(r, models.ServiceSchedule{IsActive: true})
	if key != "" {
		http.Redirect(w, r, "/admin/schedules?error="+key, http.StatusSeeOther)
		return
	}
	if err := db.Conn().Create(&s).Error; err != nil {
		http.Redirect(w, r, "/admin/schedules?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/schedules?ok=saved", http.StatusSeeOther)
}

// POST /admin/schedules/{id}
func AdminScheduleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var s models.ServiceSchedule
	if err := db.Conn().First(&s, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Redirect(w, r, "/admin/schedules?error=not_found", http.StatusSeeOther)
		return
	}
	s, key := scheduleFromForm(r, s)
	if key != "" {
		http.Redirect(w, r, "/admin/schedules?error="+key, http.StatusSeeOther)
		return
	}
	if err := db.Conn().Save(&s).Error; err != nil {
		http.Redirect(w, r, "/admin/schedules?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/schedules?ok=saved", http.StatusSeeOther)
}

// POST /admin/schedules/{id}/deactivate — soft delete, keeps the row for
// reactivation.
func AdminScheduleDeactivate(w http.ResponseWriter, r *http.Request) {
	setScheduleActive(w, r, false, "deactivated")
}

// POST /admin/schedules/{id}/activate
func AdminScheduleActivate(w http.ResponseWriter, r *http.Request) {
	setScheduleActive(w, r, true, "reactivated")
}

func setScheduleActive(w http.ResponseWriter, r *http.Request, active bool, okKey string) {
	id := chi.URLParam(r, "id")
	res := db.Conn().Model(&models.ServiceSchedule{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil || res.RowsAffected == 0 {
		http.Redirect(w, r, "/admin/schedules?error=not_found", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/schedules?ok="+okKey, http.StatusSeeOther)
}

// scheduleFromForm fills s from the posted fields; the returned key is an
// error flash key, empty on success.
func scheduleFromForm(r *http.Request, s models.ServiceSchedule) (models.ServiceSchedule, string) {
	day := r.FormValue("day_of_week")
	name := strings.TrimSpace(r.FormValue("service_name"))
	when := strings.TrimSpace(r.FormValue("service_time"))
	if day == "" || name == "" || when == "" {
		return s, "missing"
	}
	valid := false
	for _, d := range models.DaysOfWeek {
		if d == day {
			valid = true
			break
		}
	}
	if !valid {
		return s, "invalid_choice"
	}

	order := 0
	if v := r.FormValue("sort_order"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, "invalid_form"
		}
		order = n
	}

	s.DayOfWeek = day
	s.ServiceName = name
	s.ServiceTime = when
	s.Leader = strings.TrimSpace(r.FormValue("leader"))
	s.SortOrder = order
	return s, ""
}
