package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

// CadastroForm renders the public member-registration form.
func CadastroForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "cadastro.tmpl", map[string]any{
			"Title":         "Cadastro de Membros",
			"Info":          churchInfo(),
			"Genders":       models.Genders,
			"CivilStatuses": models.CivilStatuses,
			"Congregations": models.Congregations,
			"Labels":        models.CongregationLabels,
			"Flash":         MakeFlash(r),
		})
	}
}

// CadastroSubmit inserts one member row and redirects back, clearing the
// form through the redirect.
func CadastroSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := svc.MemberInput{
		FullName:     r.FormValue("full_name"),
		BirthDate:    r.FormValue("birth_date"),
		BirthYear:    r.FormValue("birth_year"),
		Gender:       r.FormValue("gender"),
		CivilStatus:  r.FormValue("civil_status"),
		Congregation: r.FormValue("congregation"),
		IsBaptized:   r.FormValue("is_baptized") == "on",
	}

	if _, err := svc.CreateMember(in); err != nil {
		http.Redirect(w, r, "/cadastro?error="+memberErrorKey(err), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/cadastro?ok=member_saved", http.StatusSeeOther)
}

func memberErrorKey(err error) string {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		return "missing"
	case errors.Is(err, svc.ErrInvalidYear):
		return "invalid_year"
	case errors.Is(err, svc.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, svc.ErrInvalidChoice):
		return "invalid_choice"
	default:
		return "db"
	}
}
