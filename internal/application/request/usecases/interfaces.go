package usecases

import (
	"context"
	"io"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/request"
	apperrors "servicedesk/internal/shared/errors"
)

// AttachmentStore persists uploaded file bytes and returns the stored path.
type AttachmentStore interface {
	Save(fileName string, r io.Reader) (string, error)
	Open(relPath string) (io.ReadCloser, error)
}

// AssignmentNotifier delivers a best-effort notification to a technician
// when work is assigned. A nil notifier disables notifications.
type AssignmentNotifier interface {
	SendAssignmentNotification(to, staffName, requestNumber, requestTitle string) error
}

// AccessScope narrows request reads to what an area handler may expose.
// Each scope still verifies the actor holds the matching role.
type AccessScope string

const (
	ScopeAll        AccessScope = "all"        // admin
	ScopeDepartment AccessScope = "department" // HOD's active department
	ScopeAssigned   AccessScope = "assigned"   // technician's assigned work
	ScopeMine       AccessScope = "mine"       // requestor's own submissions
)

// resolveActiveDepartment returns the single department the acting staff
// member currently oversees. No active assignment is a not-found condition;
// staff mapped into several departments at once is rejected until an admin
// closes the surplus assignments.
func resolveActiveDepartment(ctx context.Context, repo assignment.Repository, staffID uint) (uint, error) {
	deptIDs, err := repo.ActiveDepartmentIDs(ctx, staffID, time.Now())
	if err != nil {
		return 0, apperrors.NewInternalError("failed to resolve department")
	}
	if len(deptIDs) == 0 {
		return 0, apperrors.NewNotFoundError("Department not found")
	}
	if len(deptIDs) > 1 {
		return 0, apperrors.NewConflictError("staff member is active in more than one department")
	}
	return deptIDs[0], nil
}

// replyComment picks the audit comment for a transition into next.
func replyComment(next request.Status, byTechnician bool) string {
	switch next {
	case request.StatusInProgress:
		return request.CommentAssigned
	case request.StatusResolved:
		if byTechnician {
			return request.CommentResolvedByTech
		}
		return request.CommentResolvedByHOD
	case request.StatusRejected:
		return request.CommentRejectedByHOD
	case request.StatusClosed:
		return request.CommentClosedByHOD
	}
	return ""
}
