package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

// newTestRouter chdirs to the repo root so template parsing finds the
// templates directory, and points the shared DB at a temp file.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	orig, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(orig) }) //nolint:errcheck
	if err := os.Chdir("../.."); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	config.C = config.Settings{UploadsDir: t.TempDir()}
	if err := db.Init(filepath.Join(t.TempDir(), "web_test.db")); err != nil {
		t.Fatalf("db init: %v", err)
	}
	if err := db.Seed("admin", "segredo"); err != nil {
		t.Fatalf("db seed: %v", err)
	}
	return Router()
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthz(t *testing.T) {
	r := newTestRouter(t)
	if rec := get(t, r, "/healthz"); rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// TestPublicPages_EmptyState renders the public pages against empty tables;
// they must answer 200 with the empty-state copy, never error.
func TestPublicPages_EmptyState(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/", "/avisos", "/cadastro"} {
		rec := get(t, r, path)
		if rec.Code != 200 {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}

	rec := get(t, r, "/avisos")
	if !strings.Contains(rec.Body.String(), "Nenhum aviso") {
		t.Error("empty posts list missing empty-state message")
	}
}

// TestPalestra_ClosedWithoutActiveLecture shows the closed notice when no
// lecture row is active.
func TestPalestra_ClosedWithoutActiveLecture(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/inscricao-palestra")
	if rec.Code != 200 {
		t.Fatalf("GET /inscricao-palestra = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "encerradas") {
		t.Error("closed notice not rendered")
	}
}

// TestPalestra_ClosedByToggle flips the registrations flag off and verifies
// the next page load shows the closed notice even with an active lecture.
func TestPalestra_ClosedByToggle(t *testing.T) {
	r := newTestRouter(t)

	lec := models.LectureInfo{Title: "Palestra de Casais", Price: 150, IsActive: true}
	if err := db.Conn().Create(&lec).Error; err != nil {
		t.Fatalf("create lecture: %v", err)
	}

	rec := get(t, r, "/inscricao-palestra")
	if !strings.Contains(rec.Body.String(), "husband_name") {
		t.Fatal("form not shown while registrations are open")
	}

	if err := svc.SetConfigValue(svc.LectureEnabledKey, "false"); err != nil {
		t.Fatalf("set config: %v", err)
	}

	rec = get(t, r, "/inscricao-palestra")
	if rec.Code != 200 {
		t.Fatalf("GET /inscricao-palestra = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "encerradas") {
		t.Error("closed notice not rendered after toggle")
	}
}

// TestAdmin_RequiresSession checks that guarded pages redirect to the login
// form without touching entity handlers.
func TestAdmin_RequiresSession(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/admin/members", "/admin/posts", "/admin/reports"} {
		rec := get(t, r, path)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("GET %s = %d, want 303", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin/login") {
			t.Errorf("GET %s redirects to %q, want /admin/login", path, loc)
		}
	}
}

// TestAdminLogin_BadCredentialStaysOut posts a wrong password and verifies
// the dashboard stays unauthenticated.
func TestAdminLogin_BadCredentialStaysOut(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"errada"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=login_failed") {
		t.Errorf("redirects to %q, want login_failed flash", loc)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login set a cookie")
	}

	// dashboard still gated
	if rec := get(t, r, "/admin/members"); rec.Code != http.StatusSeeOther {
		t.Errorf("dashboard reachable after failed login: %d", rec.Code)
	}
}

// TestAdminLogin_Success logs in and reaches a guarded page with the issued
// cookie.
func TestAdminLogin_Success(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"segredo"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login = %d, want 303", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/members", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("GET /admin/members with session = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Nenhum membro") {
		t.Error("empty members tab missing empty-state message")
	}
}
