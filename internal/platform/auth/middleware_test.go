package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestMiddleware_ValidToken(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	accountID := uuid.New()
	tok, _ := ti.Issue(accountID, RolePatient)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	var gotRole string
	h := Middleware(ti)(func(c echo.Context) error {
		gotID = AccountIDFromContext(c.Request().Context())
		gotRole = RoleFromContext(c.Request().Context())
		return okHandler(c)
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != accountID {
		t.Errorf("account id = %v, want %v", gotID, accountID)
	}
	if gotRole != RolePatient {
		t.Errorf("role = %q, want patient", gotRole)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Middleware(ti)(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := Middleware(ti)(okHandler)(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestRequireRole(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	tok, _ := ti.Issue(uuid.New(), RolePatient)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Patient token passing a physician-only gate must be forbidden.
	h := Middleware(ti)(func(c echo.Context) error {
		return RequireRole(RolePhysician)(okHandler)(c)
	})
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}
