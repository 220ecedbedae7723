package identity

import (
	"fmt"
	"time"

	"servicedesk/internal/shared/authorization"
)

// Role is the persisted reference row behind a workflow role name. The set
// of names is fixed; rows exist so grants can reference them by ID.
type Role struct {
	id        uint
	name      authorization.UserRole
	createdAt time.Time
}

func ReconstructRole(id uint, name string, createdAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	role := authorization.ParseUserRole(name)
	if role == "" {
		return nil, fmt.Errorf("unknown role: %s", name)
	}

	return &Role{id: id, name: role, createdAt: createdAt}, nil
}

func (r *Role) ID() uint                     { return r.id }
func (r *Role) Name() authorization.UserRole { return r.name }
func (r *Role) CreatedAt() time.Time         { return r.createdAt }
