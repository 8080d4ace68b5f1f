package store

import (
	"context"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

const settingsCollection = "settings.json"

// SettingsRepository reads the singleton settings object. Unlike the list
// collections, a missing settings file is a hard error: without a JWT secret
// no login or token verification can proceed.
type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(s *Store) *SettingsRepository {
	return &SettingsRepository{store: s}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	if err := r.store.Load(settingsCollection, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
