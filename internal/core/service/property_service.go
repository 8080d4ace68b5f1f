package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fabrica/realestate-crm/internal/api/metrics"
	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// PropertyService implements listing CRUD. Mutations enqueue an audit entry
// after the write commits; recording is best-effort and never fails the
// request.
type PropertyService struct {
	repo     ports.PropertyRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, recorder: recorder, logger: logger}
}

func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	images := input.Images
	if images == nil {
		images = []string{}
	}

	p := &domain.Property{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Status:      input.Status,
		AgentID:     input.AgentID,
		Images:      images,
		CreatedAt:   time.Now().UTC(),

		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Bedrooms:  input.Bedrooms,
		Bathrooms: input.Bathrooms,
		AreaSqFt:  input.AreaSqFt,
		Videos:    input.Videos,
		Features:  input.Features,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(p.Status).Inc()
	s.logger.Info().Str("property_id", p.ID).Str("status", p.Status).Msg("property created")
	s.record(p.ID, domain.ActionCreated, input.ActorID)

	return p, nil
}

// Update merges the provided fields into the stored record. Unset fields stay
// untouched; updatedAt is always bumped.
func (s *PropertyService) Update(ctx context.Context, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.AgentID != nil {
		p.AgentID = input.AgentID
	}
	if input.Images != nil {
		p.Images = *input.Images
	}
	if input.Address != nil {
		p.Address = *input.Address
	}
	if input.City != nil {
		p.City = *input.City
	}
	if input.State != nil {
		p.State = *input.State
	}
	if input.ZipCode != nil {
		p.ZipCode = *input.ZipCode
	}
	if input.Bedrooms != nil {
		p.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		p.Bathrooms = *input.Bathrooms
	}
	if input.AreaSqFt != nil {
		p.AreaSqFt = *input.AreaSqFt
	}
	if input.Videos != nil {
		p.Videos = *input.Videos
	}
	if input.Features != nil {
		p.Features = *input.Features
	}

	now := time.Now().UTC()
	p.UpdatedAt = &now

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("property_id", p.ID).Msg("property updated")
	s.record(p.ID, domain.ActionUpdated, input.ActorID)

	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id, actorID string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("property_id", id).Msg("property deleted")
	s.record(id, domain.ActionDeleted, actorID)
	return nil
}

func (s *PropertyService) record(id, action, actorID string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		EntityType: "property",
		EntityID:   id,
		Action:     action,
		ActorID:    actorID,
	})
}
