package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
	"github.com/adtc/araporanga/internal/storage"
)

// AdminImages lists the gallery and hosts the upload form.
func AdminImages(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var images []models.ChurchImage
		if err := db.Conn().Order("created_at desc").Find(&images).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "admin/images.tmpl", map[string]any{
			"Title":  "Admin • Imagens",
			"Images": images,
			"Flash":  MakeFlash(r),
		})
	}
}

// POST /admin/images
func AdminImageUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	f, fh, err := r.FormFile("image")
	if name == "" || err != nil {
		http.Redirect(w, r, "/admin/images?error=missing", http.StatusSeeOther)
		return
	}
	f.Close()

	url, err := storage.SaveImage(config.C.UploadsDir, fh)
	if err != nil {
		http.Redirect(w, r, "/admin/images?error=upload_failed", http.StatusSeeOther)
		return
	}

	img := models.ChurchImage{Name: name, ImageURL: url}
	if err := db.Conn().Create(&img).Error; err != nil {
		http.Redirect(w, r, "/admin/images?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/images?ok=uploaded", http.StatusSeeOther)
}

// POST /admin/images/{id}/hero
func AdminImageSetHero(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/admin/images?error=not_found", http.StatusSeeOther)
		return
	}
	if err := svc.SetHeroImage(uint(id)); err != nil {
		http.Redirect(w, r, "/admin/images?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/images?ok=hero_set", http.StatusSeeOther)
}

// POST /admin/images/{id}/delete
func AdminImageDelete(w http.ResponseWriter, r *http.Request) {
	var img models.ChurchImage
	if err := db.Conn().First(&img, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Redirect(w, r, "/admin/images?error=not_found", http.StatusSeeOther)
		return
	}
	if err := db.Conn().Delete(&img).Error; err != nil {
		http.Redirect(w, r, "/admin/images?error=db", http.StatusSeeOther)
		return
	}
	storage.Remove(config.C.UploadsDir, img.ImageURL)
	http.Redirect(w, r, "/admin/images?ok=deleted", http.StatusSeeOther)
}
