package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

func coupleForm() url.Values {
	return url.Values{
		"husband_name":  {"Carlos Souza"},
		"husband_phone": {"(88) 98823-6003"},
		"husband_cpf":   {"123.456.789-01"},
		"wife_name":     {"Maria Souza"},
		"wife_phone":    {"(88) 98823-6004"},
		"wife_cpf":      {"987.654.321-09"},
	}
}

func TestPalestraSubmit_RedirectsToPayment(t *testing.T) {
	initTestDB(t)

	rec := postForm(t, PalestraSubmit, "/inscricao-palestra", coupleForm())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/inscricao-palestra/pagamento?reg=") {
		t.Fatalf("redirects to %q, want payment page", loc)
	}

	var reg models.LectureRegistration
	if err := db.Conn().First(&reg).Error; err != nil {
		t.Fatalf("registration row not created: %v", err)
	}
	if !strings.Contains(loc, reg.PixTxID) {
		t.Errorf("redirect %q does not carry txid %q", loc, reg.PixTxID)
	}
	if reg.PixPayload == "" {
		t.Error("registration stored without a payment payload")
	}
}

// TestPalestraSubmit_ToggleRecheckedOnSubmit closes registrations after the
// form would already be open in a browser; the POST must still be rejected.
func TestPalestraSubmit_ToggleRecheckedOnSubmit(t *testing.T) {
	initTestDB(t)
	if err := svc.SetConfigValue(svc.LectureEnabledKey, "false"); err != nil {
		t.Fatalf("set config: %v", err)
	}

	rec := postForm(t, PalestraSubmit, "/inscricao-palestra", coupleForm())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=closed") {
		t.Errorf("redirects to %q, want closed flash", loc)
	}

	var count int64
	db.Conn().Model(&models.LectureRegistration{}).Count(&count)
	if count != 0 {
		t.Errorf("closed submission created %d rows", count)
	}
}

func TestPalestraSubmit_InvalidForm(t *testing.T) {
	initTestDB(t)

	form := coupleForm()
	form.Set("husband_cpf", "123") // too short

	rec := postForm(t, PalestraSubmit, "/inscricao-palestra", form)
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=invalid_form") {
		t.Errorf("redirects to %q, want invalid_form flash", loc)
	}
}
