package handlers

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

const adminCookieName = "admin_session"

type ctxKey int

const adminUserKey ctxKey = 0

// RequireAdmin loads the session behind the cookie and rejects anything
// expired, unknown, or without the admin role. The resolved user lands in
// the request context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(adminCookieName); err == nil {
			token = c.Value
		}
		user, err := svc.SessionUser(token)
		if err != nil {
			http.Redirect(w, r, "/admin/login?next="+r.URL.RequestURI(), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminUserKey, user)))
	})
}

func currentAdmin(r *http.Request) *models.AdminUser {
	if u, ok := r.Context().Value(adminUserKey).(*models.AdminUser); ok {
		return u
	}
	return nil
}

// GET /admin/login
func AdminLoginForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "admin/login.tmpl", map[string]any{
			"Title": "Admin • Login",
			"Next":  r.URL.Query().Get("next"),
			"Flash": MakeFlash(r),
		})
	}
}

// POST /admin/login
func AdminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, err := svc.Login(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		http.Redirect(w, r, "/admin/login?error=login_failed", http.StatusSeeOther)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
	next := r.FormValue("next")
	if next == "" {
		next = "/admin/members"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// POST /admin/logout
func AdminLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(adminCookieName); err == nil {
		svc.Logout(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
