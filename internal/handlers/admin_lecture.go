package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

// AdminLecture hosts the lecture-info form, the registrations toggle, and
// the registrations list.
func AdminLecture(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lecture models.LectureInfo
		_ = db.Conn().Order("updated_at desc").First(&lecture).Error

		var regs []models.LectureRegistration
		if err := db.Conn().Order("created_at desc").Find(&regs).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}

		render(w, t, "admin/lecture.tmpl", map[string]any{
			"Title":         "Admin • Palestra de Casais",
			"Lecture":       lecture,
			"Registrations": regs,
			"Enabled":       svc.LectureRegistrationsEnabled(),
			"Flash":         MakeFlash(r),
		})
	}
}

// POST /admin/lecture — creates or updates the single lecture row.
func AdminLectureSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Redirect(w, r, "/admin/lecture?error=missing", http.StatusSeeOther)
		return
	}

	var lecture models.LectureInfo
	_ = db.Conn().Order("updated_at desc").First(&lecture).Error

	lecture.Title = title
	lecture.Description = strings.TrimSpace(r.FormValue("description"))
	lecture.Location = strings.TrimSpace(r.FormValue("location"))
	lecture.AdditionalInfo = strings.TrimSpace(r.FormValue("additional_info"))
	lecture.ContactInfo = strings.TrimSpace(r.FormValue("contact_info"))
	lecture.IsActive = r.FormValue("is_active") == "on"

	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
		if err != nil || price < 0 {
			http.Redirect(w, r, "/admin/lecture?error=invalid_form", http.StatusSeeOther)
			return
		}
		lecture.Price = price
	}
	if v := r.FormValue("max_participants"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Redirect(w, r, "/admin/lecture?error=invalid_form", http.StatusSeeOther)
			return
		}
		lecture.MaxParticipants = n
	}
	lecture.DateTime = parseOptionalDateTime(r.FormValue("date"), r.FormValue("time"))
	lecture.RegistrationDeadline = parseOptionalDateTime(r.FormValue("deadline_date"), r.FormValue("deadline_time"))

	if err := db.Conn().Save(&lecture).Error; err != nil {
		http.Redirect(w, r, "/admin/lecture?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/lecture?ok=saved", http.StatusSeeOther)
}

// POST /admin/lecture/toggle
func AdminLectureToggle(w http.ResponseWriter, r *http.Request) {
	enabled := svc.LectureRegistrationsEnabled()
	next := "false"
	okKey := "toggle_off"
	if !enabled {
		next = "true"
		okKey = "toggle_on"
	}
	if err := svc.SetConfigValue(svc.LectureEnabledKey, next); err != nil {
		http.Redirect(w, r, "/admin/lecture?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/lecture?ok="+okKey, http.StatusSeeOther)
}

// POST /admin/lecture/registrations/{id}/delete
func AdminLectureRegDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := db.Conn().Delete(&models.LectureRegistration{}, "id = ?", id).Error; err != nil {
		http.Redirect(w, r, "/admin/lecture?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/lecture?ok=deleted", http.StatusSeeOther)
}

// parseOptionalDateTime("2006-01-02", "15:04") -> *time.Time or nil.
func parseOptionalDateTime(dateStr, timeStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}
	layout := "2006-01-02"
	if strings.TrimSpace(timeStr) != "" {
		layout = "2006-01-02 15:04"
		dateStr = dateStr + " " + strings.TrimSpace(timeStr)
	}
	t, err := time.ParseInLocation(layout, dateStr, brLocation())
	if err != nil {
		return nil
	}
	return &t
}

func brLocation() *time.Location {
	loc, err := time.LoadLocation("America/Fortaleza")
	if err != nil {
		return time.FixedZone("BRT", -3*3600)
	}
	return loc
}
