package request

import (
	"fmt"
	"time"
)

// Attachment is a file stored alongside a service request. The stored path
// points into the local uploads directory; the original file name is kept
// for download headers.
type Attachment struct {
	id               uint
	requestID        uint
	filePath         string
	fileName         string
	uploadedByUserID uint
	uploadedAt       time.Time
}

func NewAttachment(requestID uint, filePath, fileName string, uploadedByUserID uint) (*Attachment, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if uploadedByUserID == 0 {
		return nil, fmt.Errorf("uploader user ID is required")
	}

	return &Attachment{
		requestID:        requestID,
		filePath:         filePath,
		fileName:         fileName,
		uploadedByUserID: uploadedByUserID,
		uploadedAt:       time.Now(),
	}, nil
}

func ReconstructAttachment(id, requestID uint, filePath, fileName string, uploadedByUserID uint, uploadedAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}

	return &Attachment{
		id:               id,
		requestID:        requestID,
		filePath:         filePath,
		fileName:         fileName,
		uploadedByUserID: uploadedByUserID,
		uploadedAt:       uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint               { return a.id }
func (a *Attachment) RequestID() uint        { return a.requestID }
func (a *Attachment) FilePath() string       { return a.filePath }
func (a *Attachment) FileName() string       { return a.fileName }
func (a *Attachment) UploadedByUserID() uint { return a.uploadedByUserID }
func (a *Attachment) UploadedAt() time.Time  { return a.uploadedAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
