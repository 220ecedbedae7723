package usecases

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/authorization"
	apperrors "servicedesk/internal/shared/errors"
)

func testAttachment(t *testing.T, id, requestID uint) *request.Attachment {
	t.Helper()

	att, err := request.ReconstructAttachment(
		id, requestID, "20260101/1_invoice.pdf", "invoice.pdf", 10, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return att
}

func newDownloadUC(
	t *testing.T,
	req *request.ServiceRequest,
	att *request.Attachment,
	assignmentRepo *mockAssignmentRepository,
	store *mockAttachmentStore,
) *DownloadAttachmentUseCase {
	return NewDownloadAttachmentUseCase(
		&mockRequestRepository{GetByIDFunc: func(ctx context.Context, id uint) (*request.ServiceRequest, error) {
			return req, nil
		}},
		&mockAttachmentRepository{GetByIDFunc: func(ctx context.Context, id uint) (*request.Attachment, error) {
			return att, nil
		}},
		&mockRequestTypeRepository{GetByIDFunc: func(ctx context.Context, id uint) (*catalog.RequestType, error) {
			return testRequestType(t, 10), nil
		}},
		assignmentRepo,
		store,
		&mockLogger{},
	)
}

func TestDownloadAttachmentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("requestor downloads own attachment", func(t *testing.T) {
		req := testRequest(t, request.StatusPending, request.PriorityMedium)
		store := &mockAttachmentStore{
			OpenFunc: func(relPath string) (io.ReadCloser, error) {
				assert.Equal(t, "20260101/1_invoice.pdf", relPath)
				return io.NopCloser(strings.NewReader("file-bytes")), nil
			},
		}
		uc := newDownloadUC(t, req, testAttachment(t, 3, req.ID()), &mockAssignmentRepository{}, store)

		result, err := uc.Execute(ctx, DownloadAttachmentQuery{
			RequestID:    req.ID(),
			AttachmentID: 3,
			Scope:        ScopeMine,
			ActorUserID:  req.CreatorUserID(),
			ActorRoles:   []string{authorization.RoleRequestor.String()},
		})
		require.NoError(t, err)
		defer result.Content.Close()

		assert.Equal(t, "invoice.pdf", result.FileName)
		data, err := io.ReadAll(result.Content)
		require.NoError(t, err)
		assert.Equal(t, "file-bytes", string(data))
	})

	t.Run("another requestor's attachment is not found", func(t *testing.T) {
		req := testRequest(t, request.StatusPending, request.PriorityMedium)
		uc := newDownloadUC(t, req, testAttachment(t, 3, req.ID()), &mockAssignmentRepository{}, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, DownloadAttachmentQuery{
			RequestID:    req.ID(),
			AttachmentID: 3,
			Scope:        ScopeMine,
			ActorUserID:  req.CreatorUserID() + 1,
			ActorRoles:   []string{authorization.RoleRequestor.String()},
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("attachment from a different request is not found", func(t *testing.T) {
		req := testRequest(t, request.StatusPending, request.PriorityMedium)
		uc := newDownloadUC(t, req, testAttachment(t, 3, req.ID()+1), &mockAssignmentRepository{}, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, DownloadAttachmentQuery{
			RequestID:    req.ID(),
			AttachmentID: 3,
			Scope:        ScopeMine,
			ActorUserID:  req.CreatorUserID(),
			ActorRoles:   []string{authorization.RoleRequestor.String()},
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("HOD downloads within own department", func(t *testing.T) {
		req := testRequest(t, request.StatusInProgress, request.PriorityMedium)
		store := &mockAttachmentStore{
			OpenFunc: func(relPath string) (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("file-bytes")), nil
			},
		}
		assignmentRepo := &mockAssignmentRepository{
			ActiveDepartmentIDsFunc: singleDepartment(10),
		}
		uc := newDownloadUC(t, req, testAttachment(t, 3, req.ID()), assignmentRepo, store)

		result, err := uc.Execute(ctx, DownloadAttachmentQuery{
			RequestID:    req.ID(),
			AttachmentID: 3,
			Scope:        ScopeDepartment,
			ActorUserID:  99,
			ActorStaffID: uintPtr(9),
			ActorRoles:   []string{authorization.RoleHOD.String()},
		})
		require.NoError(t, err)
		defer result.Content.Close()
		assert.Equal(t, "invoice.pdf", result.FileName)
	})

	t.Run("HOD outside the owning department is not found", func(t *testing.T) {
		req := testRequest(t, request.StatusInProgress, request.PriorityMedium)
		assignmentRepo := &mockAssignmentRepository{
			ActiveDepartmentIDsFunc: singleDepartment(20),
		}
		uc := newDownloadUC(t, req, testAttachment(t, 3, req.ID()), assignmentRepo, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, DownloadAttachmentQuery{
			RequestID:    req.ID(),
			AttachmentID: 3,
			Scope:        ScopeDepartment,
			ActorUserID:  99,
			ActorStaffID: uintPtr(9),
			ActorRoles:   []string{authorization.RoleHOD.String()},
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
