package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	if err := db.Init(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("db init: %v", err)
	}
}

func postForm(t *testing.T, h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCadastroSubmit_CreatesMember(t *testing.T) {
	initTestDB(t)

	form := url.Values{
		"full_name":    {"Maria de Souza"},
		"birth_year":   {"1985"},
		"gender":       {"feminino"},
		"civil_status": {"casado"},
		"congregation": {"congregacao_boa_vista"},
	}
	rec := postForm(t, CadastroSubmit, "/cadastro", form)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "ok=member_saved") {
		t.Errorf("redirects to %q, want success flash", loc)
	}

	var count int64
	db.Conn().Model(&models.Member{}).Count(&count)
	if count != 1 {
		t.Fatalf("member count = %d, want 1", count)
	}
}

func TestCadastroSubmit_MissingFieldNoInsert(t *testing.T) {
	initTestDB(t)

	form := url.Values{
		"full_name": {"Maria de Souza"},
		// birth date/year absent
		"gender":       {"feminino"},
		"civil_status": {"casado"},
		"congregation": {"congregacao_boa_vista"},
	}
	rec := postForm(t, CadastroSubmit, "/cadastro", form)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=missing") {
		t.Errorf("redirects to %q, want missing-fields flash", loc)
	}

	var count int64
	db.Conn().Model(&models.Member{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submission created %d rows", count)
	}
}
