package domain

import "errors"

var ErrRoleNotFound = errors.New("role not found")

// Permission names understood by the permission middleware.
const (
	PermManageRoles = "roles:manage"
)

// Role groups a named set of permissions. Users reference roles by id; there
// is no referential-integrity enforcement, so deleting a role neither cascades
// to users nor is blocked by them.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the role grants the named permission.
func (r *Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
