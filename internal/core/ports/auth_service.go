package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// RegisterInput carries the fields accepted by POST /auth/register.
type RegisterInput struct {
	Email    string
	Password string
	RoleID   string
}

// UpdateProfileInput carries the optional fields of PUT /api/users/me.
// Nil pointers leave the stored value untouched.
type UpdateProfileInput struct {
	Email *string
	Name  *string
	Phone *string
}

// AuthService defines registration, login, and profile use-cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token. Unknown email and wrong password
	// fail identically with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdateMe(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}
