package value_objects

import (
	"fmt"
	"strings"
)

// Status represents the user account status value object
type Status string

// Status constants
const (
	// StatusPending means the account exists but the email address has
	// not been verified yet.
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeleted  Status = "deleted"
)

// ValidStatuses contains all valid status values
var ValidStatuses = map[Status]bool{
	StatusPending:  true,
	StatusActive:   true,
	StatusInactive: true,
	StatusDeleted:  true,
}

// StatusTransitions defines allowed status transitions
var StatusTransitions = map[Status][]Status{
	StatusPending: {
		StatusActive,
		StatusDeleted,
	},
	StatusActive: {
		StatusInactive,
		StatusDeleted,
	},
	StatusInactive: {
		StatusActive,
		StatusDeleted,
	},
	StatusDeleted: {},
}

// NewStatus creates a new Status value object with validation
func NewStatus(value string) (*Status, error) {
	if value == "" {
		// Default to pending for new users
		status := StatusPending
		return &status, nil
	}

	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", value)
	}
	return &status, nil
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range StatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the account can be used
func (s Status) IsActive() bool {
	return s == StatusActive
}
