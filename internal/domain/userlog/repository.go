package userlog

import "context"

// Repository defines the interface for activity log operations. Rows
// are append-only; user deletion leaves orphaned logs in place.
type Repository interface {
	Create(ctx context.Context, log *UserLog) error
	List(ctx context.Context, filter ListFilter) ([]*UserLog, int64, error)
}

// ListFilter represents filtering and pagination options for the log list
type ListFilter struct {
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
	UserID       uint   `json:"user_id,omitempty"`
	ActivityType string `json:"activity_type,omitempty"`
}
