package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// CreatePropertyInput carries all data needed to create a listing. Optional
// slices default to empty, never null, in the stored record.
type CreatePropertyInput struct {
	Title       string
	Description string
	Price       float64
	Status      string
	AgentID     *string
	Images      []string

	Address   string
	City      string
	State     string
	ZipCode   string
	Bedrooms  int
	Bathrooms int
	AreaSqFt  float64
	Videos    []string
	Features  []string

	// ActorID identifies the authenticated caller for the activity feed.
	ActorID string
}

// UpdatePropertyInput is a partial update: nil pointers leave the stored
// field untouched, so a PUT merges into the existing record instead of
// replacing it.
type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Price       *float64
	Status      *string
	AgentID     *string
	Images      *[]string

	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Bedrooms  *int
	Bathrooms *int
	AreaSqFt  *float64
	Videos    *[]string
	Features  *[]string

	ActorID string
}

// PropertyService defines use-case operations for property listings.
type PropertyService interface {
	List(ctx context.Context) ([]domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Update(ctx context.Context, id string, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id, actorID string) error
}
