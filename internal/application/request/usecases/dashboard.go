package usecases

import (
	"servicedesk/internal/domain/request"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardResult carries per-status counts in lifecycle order plus the
// total. Statuses with no requests appear with a zero count.
type DashboardResult struct {
	Counts []StatusCount `json:"counts"`
	Total  int64         `json:"total"`
}

func buildDashboard(counts map[request.Status]int64) *DashboardResult {
	result := &DashboardResult{
		Counts: make([]StatusCount, 0, len(request.AllStatuses())),
	}
	for _, status := range request.AllStatuses() {
		count := counts[status]
		result.Counts = append(result.Counts, StatusCount{
			Status: status.String(),
			Count:  count,
		})
		result.Total += count
	}
	return result
}
