package store

import (
	"context"
	"errors"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

const activityCollection = "activity.json"

// maxActivityEntries caps the feed so activity.json cannot grow without
// bound; the oldest entries are dropped on append.
const maxActivityEntries = 1000

// ActivityRepository persists the audit feed in activity.json.
type ActivityRepository struct {
	store *Store
}

func NewActivityRepository(s *Store) *ActivityRepository {
	return &ActivityRepository{store: s}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	entries, err := r.all()
	if err != nil {
		return err
	}
	entries = append(entries, *entry)
	if len(entries) > maxActivityEntries {
		entries = entries[len(entries)-maxActivityEntries:]
	}
	return r.store.Save(activityCollection, entries)
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	entries, err := r.all()
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	// Stored oldest-first; serve newest-first.
	out := make([]domain.ActivityEntry, 0, limit)
	for i := len(entries) - 1; i >= len(entries)-limit; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

func (r *ActivityRepository) all() ([]domain.ActivityEntry, error) {
	var entries []domain.ActivityEntry
	if err := r.store.Load(activityCollection, &entries); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}
