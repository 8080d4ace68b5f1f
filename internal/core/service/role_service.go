package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// RoleService implements role CRUD. No referential-integrity checks run
// against users: deleting a role referenced by users neither cascades nor
// blocks, preserving the original behavior.
type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	perms := input.Permissions
	if perms == nil {
		perms = []string{}
	}
	role := &domain.Role{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Permissions: perms,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Update(ctx context.Context, id string, input ports.RoleInput) (*domain.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role.Name = input.Name
	if input.Permissions != nil {
		role.Permissions = input.Permissions
	}
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
