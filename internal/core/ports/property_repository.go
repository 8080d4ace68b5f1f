package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// PropertyRepository defines persistence operations for property listings.
// Every mutation rewrites the whole collection through the record store; there
// is no incremental update.
type PropertyRepository interface {
	List(ctx context.Context) ([]domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	// Update replaces the stored record carrying the same id.
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
}
