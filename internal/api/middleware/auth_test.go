package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

type fakeSettings struct {
	settings domain.Settings
	err      error
}

func (f *fakeSettings) Get(_ context.Context) (*domain.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.settings
	return &s, nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(&fakeSettings{settings: domain.Settings{JWTSecret: "secret"}})
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return c, err
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"userId": "u1",
		"roleId": "r1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if c.Get("userId") != "u1" || c.Get("roleId") != "r1" {
		t.Fatalf("claims not injected: userId=%v roleId=%v", c.Get("userId"), c.Get("roleId"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "Missing or invalid Authorization header." {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	_, err := invokeAuth(t, "Basic dXNlcjpwYXNz")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"userId": "u1",
		"roleId": "r1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})

	_, err := invokeAuth(t, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "Invalid or expired token." {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "not-the-secret", jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	_, err := invokeAuth(t, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
