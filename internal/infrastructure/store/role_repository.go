package store

import (
	"context"
	"errors"

	"github.com/fabrica/realestate-crm/internal/core/domain"
)

const rolesCollection = "roles.json"

// RoleRepository persists roles in roles.json.
type RoleRepository struct {
	store *Store
}

func NewRoleRepository(s *Store) *RoleRepository {
	return &RoleRepository{store: s}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := r.all()
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	roles, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].ID == id {
			role := roles[i]
			return &role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	roles, err := r.all()
	if err != nil {
		return err
	}
	roles = append(roles, *role)
	return r.store.Save(rolesCollection, roles)
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	roles, err := r.all()
	if err != nil {
		return err
	}
	for i := range roles {
		if roles[i].ID == role.ID {
			roles[i] = *role
			return r.store.Save(rolesCollection, roles)
		}
	}
	return domain.ErrRoleNotFound
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	roles, err := r.all()
	if err != nil {
		return err
	}
	kept := roles[:0]
	found := false
	for i := range roles {
		if roles[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, roles[i])
	}
	if !found {
		return domain.ErrRoleNotFound
	}
	return r.store.Save(rolesCollection, kept)
}

func (r *RoleRepository) all() ([]domain.Role, error) {
	var roles []domain.Role
	if err := r.store.Load(rolesCollection, &roles); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return roles, nil
}
