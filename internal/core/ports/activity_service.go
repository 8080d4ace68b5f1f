package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// ActivityInput is the DTO handed from mutating services to the recorder.
type ActivityInput struct {
	EntityType string
	EntityID   string
	Action     string
	ActorID    string
}

// ActivityService appends audit entries and serves the recent feed.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// ActivityRecorder is the narrow enqueue-side interface mutating services
// depend on. The queue dispatcher satisfies it; tests use a no-op.
type ActivityRecorder interface {
	Enqueue(input ActivityInput)
}
