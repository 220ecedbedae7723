package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/shared/logger"
)

type mockAssignmentRepository struct {
	SaveFunc                       func(ctx context.Context, a *assignment.Assignment) error
	UpdateFunc                     func(ctx context.Context, a *assignment.Assignment) error
	GetByIDFunc                    func(ctx context.Context, id uint) (*assignment.Assignment, error)
	ListFunc                       func(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error)
	HasActiveOverlapFunc           func(ctx context.Context, staffID, departmentID uint, requestTypeID *uint, at time.Time) (bool, error)
	ActiveDepartmentIDsFunc        func(ctx context.Context, staffID uint, at time.Time) ([]uint, error)
	ActiveStaffIDsByDepartmentFunc func(ctx context.Context, departmentID uint, at time.Time) ([]uint, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *assignment.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) List(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssignmentRepository) HasActiveOverlap(ctx context.Context, staffID, departmentID uint, requestTypeID *uint, at time.Time) (bool, error) {
	if m.HasActiveOverlapFunc != nil {
		return m.HasActiveOverlapFunc(ctx, staffID, departmentID, requestTypeID, at)
	}
	return false, nil
}

func (m *mockAssignmentRepository) ActiveDepartmentIDs(ctx context.Context, staffID uint, at time.Time) ([]uint, error) {
	if m.ActiveDepartmentIDsFunc != nil {
		return m.ActiveDepartmentIDsFunc(ctx, staffID, at)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ActiveStaffIDsByDepartment(ctx context.Context, departmentID uint, at time.Time) ([]uint, error) {
	if m.ActiveStaffIDsByDepartmentFunc != nil {
		return m.ActiveStaffIDsByDepartmentFunc(ctx, departmentID, at)
	}
	return nil, nil
}

type mockStaffRepository struct {
	SaveFunc    func(ctx context.Context, staff *identity.Staff) error
	UpdateFunc  func(ctx context.Context, staff *identity.Staff) error
	GetByIDFunc func(ctx context.Context, id uint) (*identity.Staff, error)
	ListFunc    func(ctx context.Context, filter identity.StaffFilter) ([]*identity.Staff, int64, error)
}

func (m *mockStaffRepository) Save(ctx context.Context, staff *identity.Staff) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, staff)
	}
	return nil
}

func (m *mockStaffRepository) Update(ctx context.Context, staff *identity.Staff) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, staff)
	}
	return nil
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id uint) (*identity.Staff, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStaffRepository) List(ctx context.Context, filter identity.StaffFilter) ([]*identity.Staff, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockDepartmentRepository struct {
	SaveFunc      func(ctx context.Context, dept *catalog.Department) error
	UpdateFunc    func(ctx context.Context, dept *catalog.Department) error
	DeleteFunc    func(ctx context.Context, id uint) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Department, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.Department, error)
	ListFunc      func(ctx context.Context) ([]*catalog.Department, error)
}

func (m *mockDepartmentRepository) Save(ctx context.Context, dept *catalog.Department) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, dept)
	}
	return nil
}

func (m *mockDepartmentRepository) Update(ctx context.Context, dept *catalog.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, dept)
	}
	return nil
}

func (m *mockDepartmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id uint) (*catalog.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetByName(ctx context.Context, name string) (*catalog.Department, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]*catalog.Department, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockRequestTypeRepository struct {
	SaveFunc             func(ctx context.Context, rt *catalog.RequestType) error
	UpdateFunc           func(ctx context.Context, rt *catalog.RequestType) error
	GetByIDFunc          func(ctx context.Context, id uint) (*catalog.RequestType, error)
	GetByNameFunc        func(ctx context.Context, name string) (*catalog.RequestType, error)
	ListFunc             func(ctx context.Context) ([]*catalog.RequestType, error)
	ListVisibleFunc      func(ctx context.Context) ([]*catalog.RequestType, error)
	ListByDepartmentFunc func(ctx context.Context, departmentID uint) ([]*catalog.RequestType, error)
}

func (m *mockRequestTypeRepository) Save(ctx context.Context, rt *catalog.RequestType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rt)
	}
	return nil
}

func (m *mockRequestTypeRepository) Update(ctx context.Context, rt *catalog.RequestType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rt)
	}
	return nil
}

func (m *mockRequestTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.RequestType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestTypeRepository) GetByName(ctx context.Context, name string) (*catalog.RequestType, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRequestTypeRepository) List(ctx context.Context) ([]*catalog.RequestType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRequestTypeRepository) ListVisible(ctx context.Context) ([]*catalog.RequestType, error) {
	if m.ListVisibleFunc != nil {
		return m.ListVisibleFunc(ctx)
	}
	return nil, nil
}

func (m *mockRequestTypeRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*catalog.RequestType, error) {
	if m.ListByDepartmentFunc != nil {
		return m.ListByDepartmentFunc(ctx, departmentID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
