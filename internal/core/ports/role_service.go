package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// RoleInput carries the fields of a role create or update.
type RoleInput struct {
	Name        string
	Permissions []string
}

// RoleService defines use-case operations for roles. Deleting a role does not
// cascade to users referencing it; that is a preserved limitation, not a bug.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, input RoleInput) (*domain.Role, error)
	Update(ctx context.Context, id string, input RoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
