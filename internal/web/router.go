package web

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/handlers"
	"github.com/adtc/araporanga/internal/models"
)

func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates("templates")

	// Public pages
	r.Get("/", handlers.Home(tmpl))
	r.Get("/healthz", handlers.Health)
	r.Get("/avisos", handlers.Avisos(tmpl))

	// Member registration
	r.Get("/cadastro", handlers.CadastroForm(tmpl))
	r.Post("/cadastro", handlers.CadastroSubmit)

	// Couples' retreat registration + payment
	r.Get("/inscricao-palestra", handlers.PalestraForm(tmpl))
	r.Post("/inscricao-palestra", handlers.PalestraSubmit)
	r.Get("/inscricao-palestra/pagamento", handlers.PalestraPayment(tmpl))
	r.Get("/pix/{txid}.png", handlers.PixQR)

	// Uploaded images + static assets
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(config.C.UploadsDir))))
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir("static"))))

	// --- Admin routes (login + guard) ---
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/login", handlers.AdminLoginForm(tmpl))
		ar.Post("/login", handlers.AdminLoginSubmit)
		ar.Post("/logout", handlers.AdminLogout)

		ar.Group(func(ag chi.Router) {
			ag.Use(handlers.RequireAdmin)

			ag.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
			})

			// Members
			ag.Get("/members", handlers.AdminMembers(tmpl))
			ag.Post("/members/{id}/delete", handlers.AdminMemberDelete)

			// Posts
			ag.Get("/posts", handlers.AdminPosts(tmpl))
			ag.Post("/posts", handlers.AdminPostCreate)
			ag.Post("/posts/{id}/delete", handlers.AdminPostDelete)

			// Service schedules
			ag.Get("/schedules", handlers.AdminSchedules(tmpl))
			ag.Post("/schedules", handlers.AdminScheduleCreate)
			ag.Get("/schedules/{id}/edit", handlers.AdminScheduleEditForm(tmpl))
			ag.Post("/schedules/{id}", handlers.AdminScheduleUpdate)
			ag.Post("/schedules/{id}/deactivate", handlers.AdminScheduleDeactivate)
			ag.Post("/schedules/{id}/activate", handlers.AdminScheduleActivate)

			// Pastor profile
			ag.Get("/pastor", handlers.AdminPastor(tmpl))
			ag.Post("/pastor", handlers.AdminPastorSave)

			// Lecture info + registrations
			ag.Get("/lecture", handlers.AdminLecture(tmpl))
			ag.Post("/lecture", handlers.AdminLectureSave)
			ag.Post("/lecture/toggle", handlers.AdminLectureToggle)
			ag.Post("/lecture/registrations/{id}/delete", handlers.AdminLectureRegDelete)

			// Image gallery + hero flag
			ag.Get("/images", handlers.AdminImages(tmpl))
			ag.Post("/images", handlers.AdminImageUpload)
			ag.Post("/images/{id}/hero", handlers.AdminImageSetHero)
			ag.Post("/images/{id}/delete", handlers.AdminImageDelete)

			// Reports
			ag.Get("/reports", handlers.AdminReports(tmpl))

			// Church info
			ag.Get("/church-info", handlers.AdminChurchInfo(tmpl))
			ag.Post("/church-info", handlers.AdminChurchInfoSave)

			// Password
			ag.Get("/password", handlers.AdminPasswordForm(tmpl))
			ag.Post("/password", handlers.AdminPasswordSubmit)
		})
	})

	return r
}

func mustParseTemplates(baseDir string) *template.Template {
	loc, err := time.LoadLocation("America/Fortaleza")
	if err != nil {
		loc = time.FixedZone("BRT", -3*3600)
	}

	funcs := template.FuncMap{
		"year":  func() string { return time.Now().Format("2006") },
		"money": func(v float64) string { return fmt.Sprintf("R$ %.2f", v) },
		"fmtDate": func(t time.Time) string {
			return t.In(loc).Format("02/01/2006")
		},
		"fmtDateTime": func(t time.Time) string {
			return t.In(loc).Format("02/01/2006 15:04")
		},
		"fmtDatePtr": func(t *time.Time) string {
			if t == nil {
				return "—"
			}
			return t.In(loc).Format("02/01/2006")
		},
		"fmtDateTimePtr": func(t *time.Time) string {
			if t == nil {
				return "—"
			}
			return t.In(loc).Format("02/01/2006 15:04")
		},
		"inputDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.In(loc).Format("2006-01-02")
		},
		"inputTime": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.In(loc).Format("15:04")
		},
		"congregation": func(key string) string {
			if label, ok := models.CongregationLabels[key]; ok {
				return label
			}
			return key
		},
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "layouts", "*.tmpl")))
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "partials", "*.tmpl")))
	return p
}
