package request

import (
	"fmt"
	"strings"
)

// Status is the canonical lifecycle state of a service request. The set of
// names is fixed; the admin-managed status reference table may add display
// metadata but workflow logic only ever sees these values.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
	StatusClosed     Status = "CLOSED"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusRejected:   true,
	StatusClosed:     true,
}

// statusTransitions is the full transition table. REJECTED and CLOSED are
// terminal: nothing may leave them.
var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusInProgress,
		StatusRejected,
	},
	StatusInProgress: {
		StatusResolved,
		StatusRejected,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusRejected: {},
	StatusClosed:   {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == next {
			return true
		}
	}
	return false
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

// NewStatus parses a status name case-insensitively.
func NewStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return st, nil
}

// AllStatuses returns the canonical status names in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved, StatusRejected, StatusClosed}
}
