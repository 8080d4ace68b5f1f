package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// ActivityRepository persists the audit feed.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
