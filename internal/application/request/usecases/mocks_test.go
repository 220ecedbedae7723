package usecases

import (
	"context"
	"io"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc          func(ctx context.Context, req *request.ServiceRequest) error
	UpdateFunc        func(ctx context.Context, req *request.ServiceRequest) error
	GetByIDFunc       func(ctx context.Context, id uint) (*request.ServiceRequest, error)
	GetByNumberFunc   func(ctx context.Context, number string) (*request.ServiceRequest, error)
	ListFunc          func(ctx context.Context, filter request.Filter) ([]*request.ServiceRequest, int64, error)
	CountByStatusFunc func(ctx context.Context, filter request.Filter) (map[request.Status]int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.ServiceRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.ServiceRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.ServiceRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) GetByNumber(ctx context.Context, number string) (*request.ServiceRequest, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.ServiceRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context, filter request.Filter) (map[request.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return map[request.Status]int64{}, nil
}

type mockReplyRepository struct {
	SaveFunc            func(ctx context.Context, reply *request.Reply) error
	ListByRequestIDFunc func(ctx context.Context, requestID uint) ([]*request.Reply, error)
}

func (m *mockReplyRepository) Save(ctx context.Context, reply *request.Reply) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, reply)
	}
	return nil
}

func (m *mockReplyRepository) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Reply, error) {
	if m.ListByRequestIDFunc != nil {
		return m.ListByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc            func(ctx context.Context, att *request.Attachment) error
	GetByIDFunc         func(ctx context.Context, id uint) (*request.Attachment, error)
	ListByRequestIDFunc func(ctx context.Context, requestID uint) ([]*request.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, att *request.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, att)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*request.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
	if m.ListByRequestIDFunc != nil {
		return m.ListByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	NextFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Next(ctx context.Context) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return "SR-20260101-0001", nil
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

// mockTransactor runs the callback directly; use case tests assert on the
// repository calls, not on transaction demarcation.
type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockAttachmentStore struct {
	SaveFunc func(fileName string, r io.Reader) (string, error)
	OpenFunc func(relPath string) (io.ReadCloser, error)
}

func (m *mockAttachmentStore) Save(fileName string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(fileName, r)
	}
	return "2026/01/01/" + fileName, nil
}

func (m *mockAttachmentStore) Open(relPath string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(relPath)
	}
	return nil, nil
}

type mockNotifier struct {
	SendFunc func(to, staffName, requestNumber, requestTitle string) error
	Sent     int
}

func (m *mockNotifier) SendAssignmentNotification(to, staffName, requestNumber, requestTitle string) error {
	m.Sent++
	if m.SendFunc != nil {
		return m.SendFunc(to, staffName, requestNumber, requestTitle)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
