package catalog

import "context"

// DepartmentRepository persists departments. GetByName matches
// case-insensitively for duplicate detection and returns (nil, nil)
// when no row carries the name; the other GetByName methods below
// follow the same convention.
type DepartmentRepository interface {
	Save(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context) ([]*Department, error)
}

// ServiceTypeRepository persists service types. Deletion is not offered;
// reference rows are append-and-edit only.
type ServiceTypeRepository interface {
	Save(ctx context.Context, st *ServiceType) error
	Update(ctx context.Context, st *ServiceType) error
	GetByID(ctx context.Context, id uint) (*ServiceType, error)
	GetByName(ctx context.Context, name string) (*ServiceType, error)
	List(ctx context.Context) ([]*ServiceType, error)
}

// RequestTypeRepository persists request types.
type RequestTypeRepository interface {
	Save(ctx context.Context, rt *RequestType) error
	Update(ctx context.Context, rt *RequestType) error
	GetByID(ctx context.Context, id uint) (*RequestType, error)
	GetByName(ctx context.Context, name string) (*RequestType, error)
	List(ctx context.Context) ([]*RequestType, error)
	// ListVisible returns only the types offered to requestors.
	ListVisible(ctx context.Context) ([]*RequestType, error)
	ListByDepartment(ctx context.Context, departmentID uint) ([]*RequestType, error)
}

// StatusRefRepository persists the status reference rows.
type StatusRefRepository interface {
	Save(ctx context.Context, s *StatusRef) error
	Update(ctx context.Context, s *StatusRef) error
	GetByID(ctx context.Context, id uint) (*StatusRef, error)
	GetByName(ctx context.Context, name string) (*StatusRef, error)
	List(ctx context.Context) ([]*StatusRef, error)
}
