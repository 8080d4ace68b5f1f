package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp.Message
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrPropertyNotFound, http.StatusNotFound, "Property not found."},
		{domain.ErrRoleNotFound, http.StatusNotFound, "Role not found."},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found."},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials."},
		{domain.ErrUserExists, http.StatusBadRequest, "Email already registered."},
		{domain.ErrForbidden, http.StatusForbidden, "Forbidden."},
	}
	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code || msg != tc.message {
			t.Fatalf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.code, tc.message)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("while deleting"), domain.ErrPropertyNotFound)

	code, msg := renderError(t, wrapped)
	if code != http.StatusNotFound || msg != "Property not found." {
		t.Fatalf("wrapped error not unwrapped: (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token."))
	if code != http.StatusUnauthorized || msg != "Invalid or expired token." {
		t.Fatalf("echo error mangled: (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, msg := renderError(t, errors.New("open data/properties.json: permission denied"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Internal server error." {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
