package userlog

import (
	"context"
	"time"

	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
)

// LogEntry is the API representation of an activity log row.
type LogEntry struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Details      string    `json:"details"`
	IPAddress    string    `json:"ip_address"`
	Timestamp    time.Time `json:"timestamp"`
}

// ListRequest carries activity log filters.
type ListRequest struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	UserID       uint   `form:"user_id"`
	ActivityType string `form:"activity_type"`
}

// ListResponse is a paginated log list, newest first.
type ListResponse struct {
	Logs     []*LogEntry `json:"logs"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Service reads the activity log and records explicit entries such as
// logout events.
type Service struct {
	repo   userlog.Repository
	logger logger.Interface
}

// NewService creates an activity log service.
func NewService(repo userlog.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends an activity entry. Failures are logged, never
// surfaced; the log must not break the operation it describes.
func (s *Service) Record(ctx context.Context, userID uint, activityType, details, ipAddress string) {
	entry, err := userlog.NewUserLog(userID, activityType, details, ipAddress)
	if err != nil {
		s.logger.Warnw("failed to build activity log entry", "error", err)
		return
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Warnw("failed to record activity", "activity", activityType, "error", err)
	}
}

// List retrieves a paginated page of the activity log.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultPageSize
	}
	if req.PageSize > constants.MaxPageSize {
		req.PageSize = constants.MaxPageSize
	}

	items, total, err := s.repo.List(ctx, userlog.ListFilter{
		Page:         req.Page,
		PageSize:     req.PageSize,
		UserID:       req.UserID,
		ActivityType: req.ActivityType,
	})
	if err != nil {
		return nil, err
	}

	logs := make([]*LogEntry, 0, len(items))
	for _, l := range items {
		logs = append(logs, &LogEntry{
			ID:           l.ID(),
			UserID:       l.UserID(),
			ActivityType: l.ActivityType(),
			Details:      l.Details(),
			IPAddress:    l.IPAddress(),
			Timestamp:    l.Timestamp(),
		})
	}

	return &ListResponse{
		Logs:     logs,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
