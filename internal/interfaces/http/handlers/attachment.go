package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/request/usecases"
	"servicedesk/internal/shared/utils"
)

// serveAttachment streams a stored attachment under the calling area's
// scope. The length is unknown up front, so the body streams unsized.
func serveAttachment(c *gin.Context, downloadUC usecases.DownloadAttachmentExecutor, scope usecases.AccessScope) {
	requestID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachment_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		RequestID:    requestID,
		AttachmentID: attachmentID,
		Scope:        scope,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
		ActorRoles:   actorRoles(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", result.Content, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", result.FileName),
	})
}
