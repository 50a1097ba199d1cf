package handlers

import (
	"html/template"
	"net/http"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Home renders the landing page: hero image (or the gradient fallback when
// none is flagged), church info, active pastor, and the grouped schedule.
func Home(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := svc.ActiveSchedules()
		if err != nil {
			http.Error(w, "db error", 500)
			return
		}

		data := map[string]any{
			"Title":    "ADTC Araporanga",
			"Info":     churchInfo(),
			"Hero":     svc.HeroImage(),
			"Pastor":   svc.ActivePastor(),
			"Schedule": svc.GroupSchedules(schedules),
			"Flash":    MakeFlash(r),
		}
		render(w, t, "home.tmpl", data)
	}
}

// Avisos lists announcements newest first.
func Avisos(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var posts []models.Post
		if err := db.Conn().Order("created_at desc").Find(&posts).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "avisos.tmpl", map[string]any{
			"Title": "Avisos",
			"Info":  churchInfo(),
			"Posts": posts,
		})
	}
}

// churchInfo loads the singleton row; the seed guarantees it exists, but a
// zero value still renders.
func churchInfo() models.ChurchInfo {
	var info models.ChurchInfo
	_ = db.Conn().First(&info).Error
	return info
}
