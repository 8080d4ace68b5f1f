package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Email uniqueness is
// enforced here (by scan over the collection), not by the record store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
