package request

import (
	"fmt"
	"strings"
)

// Priority is the urgency level of a service request. Defaults come from the
// request type; a Critical request may only be resolved by an HOD.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

var validPriorities = map[Priority]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsCritical() bool {
	return p == PriorityCritical
}

// NewPriority parses a priority name case-insensitively into its canonical form.
func NewPriority(s string) (Priority, error) {
	for p := range validPriorities {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}
