package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"
)

// render clones the shared layout set, parses the requested page on top of
// it, and executes the page template. Page is relative to templates/pages
// and doubles as the template name, e.g. "admin/members.tmpl".
func render(w http.ResponseWriter, t *template.Template, page string, data map[string]any) {
	view, err := t.Clone()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if _, err := view.ParseFiles(filepath.Join("templates", "pages", filepath.FromSlash(page))); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if err := view.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}
