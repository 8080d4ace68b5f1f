package store

import (
	"context"
	"errors"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

const propertiesCollection = "properties.json"

// PropertyRepository persists listings in properties.json. Every mutation is
// a full load-mutate-save cycle over the record store.
type PropertyRepository struct {
	store *Store
}

func NewPropertyRepository(s *Store) *PropertyRepository {
	return &PropertyRepository{store: s}
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	props, err := r.all()
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []domain.Property{}
	}
	return props, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	props, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range props {
		if props[i].ID == id {
			p := props[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	props, err := r.all()
	if err != nil {
		return err
	}
	props = append(props, *p)
	return r.store.Save(propertiesCollection, props)
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	props, err := r.all()
	if err != nil {
		return err
	}
	for i := range props {
		if props[i].ID == p.ID {
			props[i] = *p
			return r.store.Save(propertiesCollection, props)
		}
	}
	return domain.ErrPropertyNotFound
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	props, err := r.all()
	if err != nil {
		return err
	}
	kept := props[:0]
	found := false
	for i := range props {
		if props[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, props[i])
	}
	if !found {
		return domain.ErrPropertyNotFound
	}
	return r.store.Save(propertiesCollection, kept)
}

func (r *PropertyRepository) all() ([]domain.Property, error) {
	var props []domain.Property
	if err := r.store.Load(propertiesCollection, &props); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return props, nil
}
