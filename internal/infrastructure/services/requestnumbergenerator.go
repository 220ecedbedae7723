package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RequestNumberGenerator produces SR-YYYYMMDD-NNNN candidates by scanning
// today's maximum persisted number. The unique index on the number column is
// the real guard; callers retry on conflict instead of holding locks.
type RequestNumberGenerator struct {
	db *gorm.DB
}

func NewRequestNumberGenerator(db *gorm.DB) *RequestNumberGenerator {
	return &RequestNumberGenerator{db: db}
}

func (g *RequestNumberGenerator) Next(ctx context.Context) (string, error) {
	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("SR-%s-", dateStr)

	// MAX over an empty day is NULL, so scan into a pointer.
	var maxNumber *string
	err := g.db.WithContext(ctx).
		Table("service_requests").
		Select("MAX(number)").
		Where("number LIKE ?", prefix+"%").
		Scan(&maxNumber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("failed to get max request number: %w", err)
	}

	seq := 1
	if maxNumber != nil && *maxNumber != "" {
		var parsed int
		if _, err := fmt.Sscanf(*maxNumber, prefix+"%d", &parsed); err == nil {
			seq = parsed + 1
		}
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
