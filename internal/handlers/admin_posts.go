package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	"github.com/adtc/araporanga/internal/storage"
)

// AdminPosts lists announcements and hosts the creation form.
func AdminPosts(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var posts []models.Post
		if err := db.Conn().Order("created_at desc").Find(&posts).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "admin/posts.tmpl", map[string]any{
			"Title": "Admin • Avisos",
			"Posts": posts,
			"Flash": MakeFlash(r),
		})
	}
}

// POST /admin/posts — multipart form, optional image.
func AdminPostCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Redirect(w, r, "/admin/posts?error=missing", http.StatusSeeOther)
		return
	}

	imageURL := ""
	if f, fh, err := r.FormFile("image"); err == nil {
		f.Close()
		url, err := storage.SaveImage(config.C.UploadsDir, fh)
		if err != nil {
			http.Redirect(w, r, "/admin/posts?error=upload_failed", http.StatusSeeOther)
			return
		}
		imageURL = url
	}

	var authorID *uint
	if u := currentAdmin(r); u != nil {
		authorID = &u.ID
	}

	post := models.Post{
		Title:    title,
		Content:  strings.TrimSpace(r.FormValue("content")),
		ImageURL: imageURL,
		AuthorID: authorID,
	}
	if err := db.Conn().Create(&post).Error; err != nil {
		http.Redirect(w, r, "/admin/posts?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/posts?ok=saved", http.StatusSeeOther)
}

// POST /admin/posts/{id}/delete
func AdminPostDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var post models.Post
	if err := db.Conn().First(&post, "id = ?", id).Error; err != nil {
		http.Redirect(w, r, "/admin/posts?error=not_found", http.StatusSeeOther)
		return
	}
	if err := db.Conn().Delete(&post).Error; err != nil {
		http.Redirect(w, r, "/admin/posts?error=db", http.StatusSeeOther)
		return
	}
	if post.ImageURL != "" {
		storage.Remove(config.C.UploadsDir, post.ImageURL)
	}
	http.Redirect(w, r, "/admin/posts?ok=deleted", http.StatusSeeOther)
}
