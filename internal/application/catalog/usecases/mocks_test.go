package usecases

import (
	"context"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/shared/logger"
)

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

type mockServiceTypeRepository struct {
	SaveFunc      func(ctx context.Context, st *catalog.ServiceType) error
	UpdateFunc    func(ctx context.Context, st *catalog.ServiceType) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.ServiceType, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.ServiceType, error)
	ListFunc      func(ctx context.Context) ([]*catalog.ServiceType, error)
}

func (m *mockServiceTypeRepository) Save(ctx context.Context, st *catalog.ServiceType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, st)
	}
	return nil
}

func (m *mockServiceTypeRepository) Update(ctx context.Context, st *catalog.ServiceType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, st)
	}
	return nil
}

func (m *mockServiceTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.ServiceType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) GetByName(ctx context.Context, name string) (*catalog.ServiceType, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) List(ctx context.Context) ([]*catalog.ServiceType, error) {
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

type mockStatusRefRepository struct {
	SaveFunc      func(ctx context.Context, s *catalog.StatusRef) error
	UpdateFunc    func(ctx context.Context, s *catalog.StatusRef) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.StatusRef, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.StatusRef, error)
	ListFunc      func(ctx context.Context) ([]*catalog.StatusRef, error)
}

func (m *mockStatusRefRepository) Save(ctx context.Context, s *catalog.StatusRef) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRefRepository) Update(ctx context.Context, s *catalog.StatusRef) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRefRepository) GetByID(ctx context.Context, id uint) (*catalog.StatusRef, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStatusRefRepository) GetByName(ctx context.Context, name string) (*catalog.StatusRef, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockStatusRefRepository) List(ctx context.Context) ([]*catalog.StatusRef, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
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
