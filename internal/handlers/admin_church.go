package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/adtc/araporanga/internal/db"
)

// AdminChurchInfo edits the singleton contact/text row shown on the public
// site.
func AdminChurchInfo(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "admin/church_info.tmpl", map[string]any{
			"Title": "Admin • Informações da Igreja",
			"Info":  churchInfo(),
			"Flash": MakeFlash(r),
		})
	}
}

// POST /admin/church-info
func AdminChurchInfoSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	info := churchInfo()
	info.ChurchName = strings.TrimSpace(r.FormValue("church_name"))
	info.ChurchDescription = strings.TrimSpace(r.FormValue("church_description"))
	info.Location = strings.TrimSpace(r.FormValue("location"))
	info.Phone = strings.TrimSpace(r.FormValue("phone"))
	info.Email = strings.TrimSpace(r.FormValue("email"))
	info.CopyrightText = strings.TrimSpace(r.FormValue("copyright_text"))

	if info.ChurchName == "" {
		http.Redirect(w, r, "/admin/church-info?error=missing", http.StatusSeeOther)
		return
	}
	if err := db.Conn().Save(&info).Error; err != nil {
		http.Redirect(w, r, "/admin/church-info?error=db", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/church-info?ok=config_saved", http.StatusSeeOther)
}
