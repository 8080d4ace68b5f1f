package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabrica/realestate-crm/internal/api/metrics"
	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService implements registration, login, and profile management.
type AuthService struct {
	users    ports.UserRepository
	settings ports.SettingsRepository
}

func NewAuthService(users ports.UserRepository, settings ports.SettingsRepository) *AuthService {
	return &AuthService{users: users, settings: settings}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.RoleID == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		RoleID:       input.RoleID,
		CreatedAt:    time.Now().UTC(),
	}

	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a signed token. An unknown email and
// a wrong password fail with the same error so callers cannot probe which
// addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	token, err := s.generateToken(user, cfg)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateMe(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if existing, err := s.users.FindByEmail(ctx, *input.Email); err == nil && existing.ID != userID {
			return nil, domain.ErrUserExists
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now

	return s.users.Update(ctx, user)
}

func (s *AuthService) generateToken(user *domain.User, cfg *domain.Settings) (string, error) {
	ttl := defaultTokenTTL
	if cfg.TokenExpiry != "" {
		if d, err := time.ParseDuration(cfg.TokenExpiry); err == nil && d > 0 {
			ttl = d
		}
	}

	claims := jwt.MapClaims{
		"userId": user.ID,
		"roleId": user.RoleID,
		"exp":    time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.JWTSecret))
}
