package identity

import "context"

// UserFilter narrows user listings.
type UserFilter struct {
	Username   *string
	IsActive   *bool
	RoleName   *string
	Page       int
	PageSize   int
}

// UserRepository persists login accounts plus their role grants and staff
// link. Grant replacement is delete-all-then-recreate inside the caller's
// transaction.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)

	GetRoleNames(ctx context.Context, userID uint) ([]string, error)
	ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error

	// GetStaffID returns the linked staff ID, or nil when the user has no
	// staff record.
	GetStaffID(ctx context.Context, userID uint) (*uint, error)
	// GetUserIDByStaffID returns the user linked to a staff record, or nil.
	GetUserIDByStaffID(ctx context.Context, staffID uint) (*uint, error)
	ReplaceStaffLink(ctx context.Context, userID uint, staffID *uint) error
}

// StaffFilter narrows staff listings.
type StaffFilter struct {
	Name     *string
	IsActive *bool
	Page     int
	PageSize int
}

// StaffRepository persists staff directory entries.
type StaffRepository interface {
	Save(ctx context.Context, staff *Staff) error
	Update(ctx context.Context, staff *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]*Staff, int64, error)
}

// RoleRepository reads the role reference rows.
type RoleRepository interface {
	List(ctx context.Context) ([]*Role, error)
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
}
