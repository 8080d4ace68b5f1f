package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// ActivityService appends audit entries and serves the dashboard feed.
// Record is invoked from the queue workers, not from request handlers.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Record(ctx context.Context, input ports.ActivityInput) error {
	entry := &domain.ActivityEntry{
		ID:         uuid.NewString(),
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Action:     input.Action,
		ActorID:    input.ActorID,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error().Err(err).
			Str("entity_id", input.EntityID).
			Str("action", input.Action).
			Msg("failed to record activity")
		return err
	}
	return nil
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	return s.repo.Recent(ctx, limit)
}
