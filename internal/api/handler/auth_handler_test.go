package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

type stubAuthService struct {
	registered *ports.RegisterInput
	registerFn func(ports.RegisterInput) (*domain.User, error)
	loginFn    func(email, password string) (string, error)
	user       *domain.User
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registered = &input
	if s.registerFn != nil {
		return s.registerFn(input)
	}
	return &domain.User{
		ID:        "u1",
		Email:     input.Email,
		RoleID:    input.RoleID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, error) {
	if s.loginFn != nil {
		return s.loginFn(email, password)
	}
	return "token-123", nil
}

func (s *stubAuthService) Me(_ context.Context, userID string) (*domain.User, error) {
	if s.user != nil && s.user.ID == userID {
		return s.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) UpdateMe(_ context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	u, err := s.Me(context.Background(), userID)
	if err != nil {
		return nil, err
	}
	clone := *u
	if input.Name != nil {
		clone.Name = *input.Name
	}
	if input.Email != nil {
		clone.Email = *input.Email
	}
	return &clone, nil
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return resp.Message
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"pass123","roleId":"r1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.registered == nil || svc.registered.Email != "alice@example.com" {
		t.Fatalf("service not called with payload: %+v", svc.registered)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Email, password & roleId are required." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{registerFn: func(ports.RegisterInput) (*domain.User, error) {
		return nil, domain.ErrUserExists
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"dup@example.com","password":"p","roleId":"r1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Email already registered." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "token-123" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginFn: func(_, _ string) (string, error) {
		return "", domain.ErrInvalidCredentials
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Invalid credentials." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodGet, "/api/users/me", "")
	err := h.Me(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{
		ID: "u1", Email: "alice@example.com", RoleID: "r1", PasswordHash: "$2a$10$secret",
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/users/me", "")
	c.Set("userId", "u1")
	if err := h.Me(c); err != nil {
		t.Fatalf("Me: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}
