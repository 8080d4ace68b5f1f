package ports

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

// SettingsRepository reads the singleton settings object. It is consulted on
// every login and on every authenticated request, so implementations must be
// cheap to call repeatedly.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}
