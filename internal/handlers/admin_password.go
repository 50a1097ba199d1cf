package handlers

import (
	"html/template"
	"net/http"

	svc "github.com/adtc/araporanga/internal/services"
)

// AdminPasswordForm renders the change-password tab for the logged-in
// account.
func AdminPasswordForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "admin/password.tmpl", map[string]any{
			"Title": "Admin • Alterar Senha",
			"Flash": MakeFlash(r),
		})
	}
}

// POST /admin/password
func AdminPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user := currentAdmin(r)
	if user == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	if next != confirm {
		http.Redirect(w, r, "/admin/password?error=password_mismatch", http.StatusSeeOther)
		return
	}
	if len(next) < 4 {
		http.Redirect(w, r, "/admin/password?error=password_short", http.StatusSeeOther)
		return
	}
	if err := svc.ChangePassword(user.ID, current, next); err != nil {
		http.Redirect(w, r, "/admin/password?error=wrong_password", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/password?ok=password_saved", http.StatusSeeOther)
}
