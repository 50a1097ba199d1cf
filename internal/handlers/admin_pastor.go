package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
	"github.com/adtc/araporanga/internal/storage"
)

// AdminPastor shows the active profile and the replacement form.
func AdminPastor(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "admin/pastor.tmpl", map[string]any{
			"Title":  "Admin • Pastor",
			"Pastor": svc.ActivePastor(),
			"Flash":  MakeFlash(r),
		})
	}
}

// POST /admin/pastor — saving always creates a new active row and retires
// the previous one; the photo is optional and carried over when omitted.
func AdminPastorSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Redirect(w, r, "/admin/pastor?error=missing", http.StatusSeeOther)
		return
	}

	imageURL := ""
	if prev := svc.ActivePastor(); prev != nil {
		imageURL = prev.ImageURL
	}
	if f, fh, err := r.FormFile("image"); err == nil {
		f.Close()
		url, err := storage.SaveImage(config.C.UploadsDir, fh)
		if err != nil {
			http.Redirect(w, r, "/admin/pastor?error=upload_failed", http.StatusSeeOther)
			return
		}
		imageURL = url
	}

	position := r.FormValue("image_position")
	if position == "" {
		position = "center"
	}

	profile := models.PastorProfile{
		Name:          name,
		ImageURL:      imageURL,
		ImagePosition: position,
	}
	if _, err := svc.SetActivePastor(profile); err != nil {
		http.Redirect(w, r, "/admin/pastor?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/pastor?ok=pastor_saved", http.StatusSeeOther)
}
