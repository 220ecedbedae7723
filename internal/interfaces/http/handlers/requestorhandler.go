package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogusecases "servicedesk/internal/application/catalog/usecases"
	"servicedesk/internal/application/request/usecases"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// RequestorHandler serves the requestor area: submitting requests and
// tracking the actor's own submissions.
type RequestorHandler struct {
	createUC      usecases.CreateRequestExecutor
	listUC        usecases.ListRequestsExecutor
	getUC         usecases.GetRequestExecutor
	downloadUC    usecases.DownloadAttachmentExecutor
	dashboardUC   usecases.RequestorDashboardExecutor
	requestTypeUC *catalogusecases.RequestTypeUseCase
	logger        logger.Interface
}

func NewRequestorHandler(
	createUC usecases.CreateRequestExecutor,
	listUC usecases.ListRequestsExecutor,
	getUC usecases.GetRequestExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	dashboardUC usecases.RequestorDashboardExecutor,
	requestTypeUC *catalogusecases.RequestTypeUseCase,
	logger logger.Interface,
) *RequestorHandler {
	return &RequestorHandler{
		createUC:      createUC,
		listUC:        listUC,
		getUC:         getUC,
		downloadUC:    downloadUC,
		dashboardUC:   dashboardUC,
		requestTypeUC: requestTypeUC,
		logger:        logger,
	}
}

// CreateRequest handles POST /api/requestor/requests. The body is multipart
// form data so a single attachment can ride along with the fields.
func (h *RequestorHandler) CreateRequest(c *gin.Context) {
	requestTypeID, err := strconv.ParseUint(c.PostForm("request_type_id"), 10, 32)
	if err != nil || requestTypeID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("request type ID is required"))
		return
	}

	cmd := usecases.CreateRequestCommand{
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		Priority:         c.PostForm("priority"),
		RequestTypeID:    uint(requestTypeID),
		CreatorUserID:    actorUserID(c),
		RequesterStaffID: actorStaffID(c),
	}

	// The command is assembled from form fields, so gin's binding
	// validation never ran on it.
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := c.FormFile("attachment")
	if err == nil && file != nil {
		opened, err := file.Open()
		if err != nil {
			h.logger.Warnw("failed to open uploaded attachment", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("attachment could not be read"))
			return
		}
		defer opened.Close()
		cmd.Attachment = &usecases.AttachmentUpload{
			FileName: file.Filename,
			Content:  opened,
		}
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service request created successfully")
}

// ListMyRequests handles GET /api/requestor/requests
func (h *RequestorHandler) ListMyRequests(c *gin.Context) {
	page, pageSize := parsePage(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Scope:        usecases.ScopeMine,
		Status:       c.Query("status"),
		Page:         page,
		PageSize:     pageSize,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
		ActorRoles:   actorRoles(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRequest handles GET /api/requestor/requests/:id
func (h *RequestorHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID:    id,
		Scope:        usecases.ScopeMine,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
		ActorRoles:   actorRoles(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DownloadAttachment handles GET /api/requestor/requests/:id/attachments/:attachment_id
func (h *RequestorHandler) DownloadAttachment(c *gin.Context) {
	serveAttachment(c, h.downloadUC, usecases.ScopeMine)
}

// Dashboard handles GET /api/requestor/dashboard
func (h *RequestorHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.RequestorDashboardQuery{
		ActorUserID: actorUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequestTypes handles GET /api/requestor/request-types. Only visible
// types are offered on the submission form.
func (h *RequestorHandler) ListRequestTypes(c *gin.Context) {
	types, err := h.requestTypeUC.ListVisible(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", types)
}
