package service

import (
	"context"
	"testing"

	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	if role, ok := r.roles[id]; ok {
		clone := *role
		return &clone, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) error {
	clone := *role
	r.roles[role.ID] = &clone
	return nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	clone := *role
	r.roles[role.ID] = &clone
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

func TestRoleService_Create(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	role, err := svc.Create(context.Background(), ports.RoleInput{
		Name:        "agent",
		Permissions: []string{"properties:write"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if role.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !role.HasPermission("properties:write") {
		t.Fatalf("permissions lost: %+v", role)
	}
}

func TestRoleService_Create_NilPermissionsBecomeEmpty(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	role, err := svc.Create(context.Background(), ports.RoleInput{Name: "viewer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if role.Permissions == nil {
		t.Fatalf("permissions must serialize as [], not null")
	}
}

func TestRoleService_Update(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo)

	created, _ := svc.Create(context.Background(), ports.RoleInput{Name: "agent", Permissions: []string{"a"}})

	updated, err := svc.Update(context.Background(), created.ID, ports.RoleInput{
		Name:        "senior-agent",
		Permissions: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "senior-agent" || len(updated.Permissions) != 2 {
		t.Fatalf("unexpected role: %+v", updated)
	}
}

func TestRoleService_Delete_MissingIsNotFound(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	if err := svc.Delete(context.Background(), "ghost"); err != domain.ErrRoleNotFound {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
