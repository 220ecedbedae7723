package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	apperrors "servicedesk/internal/shared/errors"
)

func newCreateUseCase(
	requestRepo *mockRequestRepository,
	requestTypeRepo *mockRequestTypeRepository,
	attachmentRepo *mockAttachmentRepository,
	numberGen *mockNumberGenerator,
	store *mockAttachmentStore,
) *CreateRequestUseCase {
	return NewCreateRequestUseCase(
		requestRepo,
		requestTypeRepo,
		attachmentRepo,
		numberGen,
		store,
		&mockTransactor{},
		&mockLogger{},
	)
}

func TestCreateRequestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	requestTypeRepo := &mockRequestTypeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.RequestType, error) {
			return testRequestType(t, 9), nil
		},
	}

	t.Run("creates request with default priority from request type", func(t *testing.T) {
		var saved *request.ServiceRequest
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
				saved = req
				return req.SetID(101)
			},
		}

		uc := newCreateUseCase(requestRepo, requestTypeRepo, &mockAttachmentRepository{}, &mockNumberGenerator{}, &mockAttachmentStore{})

		result, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         "Printer offline",
			Description:   "The office printer does not respond",
			RequestTypeID: 5,
			CreatorUserID: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(101), result.RequestID)
		assert.Equal(t, "SR-20260101-0001", result.Number)
		assert.Equal(t, request.StatusPending.String(), result.Status)
		assert.Equal(t, request.PriorityMedium.String(), result.Priority)
		require.NotNil(t, saved)
		assert.Equal(t, request.PriorityMedium, saved.Priority())
	})

	t.Run("explicit priority overrides the default", func(t *testing.T) {
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
				return req.SetID(102)
			},
		}

		uc := newCreateUseCase(requestRepo, requestTypeRepo, &mockAttachmentRepository{}, &mockNumberGenerator{}, &mockAttachmentStore{})

		result, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         "Server down",
			Description:   "Production database host unreachable",
			Priority:      "critical",
			RequestTypeID: 5,
			CreatorUserID: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, request.PriorityCritical.String(), result.Priority)
	})

	t.Run("strips markup from title and description", func(t *testing.T) {
		var saved *request.ServiceRequest
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
				saved = req
				return req.SetID(103)
			},
		}

		uc := newCreateUseCase(requestRepo, requestTypeRepo, &mockAttachmentRepository{}, &mockNumberGenerator{}, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         `Printer <script>alert("x")</script> offline`,
			Description:   "<b>Broken</b> again",
			RequestTypeID: 5,
			CreatorUserID: 10,
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Printer  offline", saved.Title())
		assert.Equal(t, "Broken again", saved.Description())
	})

	t.Run("retries with a fresh number on conflict", func(t *testing.T) {
		attempts := 0
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
				attempts++
				if attempts == 1 {
					return apperrors.NewConflictError("request number already exists")
				}
				return req.SetID(104)
			},
		}
		generated := 0
		numberGen := &mockNumberGenerator{
			NextFunc: func(ctx context.Context) (string, error) {
				generated++
				if generated == 1 {
					return "SR-20260101-0007", nil
				}
				return "SR-20260101-0008", nil
			},
		}

		uc := newCreateUseCase(requestRepo, requestTypeRepo, &mockAttachmentRepository{}, numberGen, &mockAttachmentStore{})

		result, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         "Printer offline",
			Description:   "The office printer does not respond",
			RequestTypeID: 5,
			CreatorUserID: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		assert.Equal(t, 2, generated)
		assert.Equal(t, "SR-20260101-0008", result.Number)
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
				return apperrors.NewConflictError("request number already exists")
			},
		}

		uc := newCreateUseCase(requestRepo, requestTypeRepo, &mockAttachmentRepository{}, &mockNumberGenerator{}, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         "Printer offline",
			Description:   "The office printer does not respond",
			RequestTypeID: 5,
			CreatorUserID: 10,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("stores attachment bytes and metadata", func(t *testing.T) {
		var storedName string
		var savedAtt *request.Attachment
		attachmentRepo := &mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, att *request.Attachment) error {
				savedAtt = att
				return att.SetID(1)
			},
		}
		requestRepo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
				return req.SetID(105)
			},
		}

		uc := newCreateUseCase(requestRepo, requestTypeRepo, attachmentRepo, &mockNumberGenerator{}, &mockAttachmentStore{
			SaveFunc: func(fileName string, r io.Reader) (string, error) {
				storedName = fileName
				return "2026/01/01/1_" + fileName, nil
			},
		})

		_, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         "Printer offline",
			Description:   "See the attached photo",
			RequestTypeID: 5,
			CreatorUserID: 10,
			Attachment: &AttachmentUpload{
				FileName: "printer.jpg",
				Content:  strings.NewReader("jpegbytes"),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "printer.jpg", storedName)
		require.NotNil(t, savedAtt)
		assert.Equal(t, uint(105), savedAtt.RequestID())
		assert.Equal(t, "printer.jpg", savedAtt.FileName())
		assert.Equal(t, "2026/01/01/1_printer.jpg", savedAtt.FilePath())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc := newCreateUseCase(&mockRequestRepository{}, requestTypeRepo, &mockAttachmentRepository{}, &mockNumberGenerator{}, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, CreateRequestCommand{Description: "x", RequestTypeID: 5, CreatorUserID: 10})
		assert.True(t, apperrors.IsValidationError(err))

		_, err = uc.Execute(ctx, CreateRequestCommand{Title: "x", RequestTypeID: 5, CreatorUserID: 10})
		assert.True(t, apperrors.IsValidationError(err))

		_, err = uc.Execute(ctx, CreateRequestCommand{Title: "x", Description: "y", CreatorUserID: 10})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		uc := newCreateUseCase(&mockRequestRepository{}, requestTypeRepo, &mockAttachmentRepository{}, &mockNumberGenerator{}, &mockAttachmentStore{})

		_, err := uc.Execute(ctx, CreateRequestCommand{
			Title:         "x",
			Description:   "y",
			Priority:      "Urgent",
			RequestTypeID: 5,
			CreatorUserID: 10,
		})
		assert.True(t, apperrors.IsValidationError(err))
	})
}
