// Package userlog holds the append-only activity audit trail.
package userlog

import (
	"fmt"
	"time"
)

type UserLog struct {
	id           uint
	userID       uint
	activityType string
	details      string
	ipAddress    string
	timestamp    time.Time
}

func NewUserLog(userID uint, activityType, details, ipAddress string) (*UserLog, error) {
	if activityType == "" {
		return nil, fmt.Errorf("activity type is required")
	}
	return &UserLog{
		userID:       userID,
		activityType: activityType,
		details:      details,
		ipAddress:    ipAddress,
		timestamp:    time.Now(),
	}, nil
}

func ReconstructUserLog(id, userID uint, activityType, details, ipAddress string, timestamp time.Time) *UserLog {
	return &UserLog{
		id:           id,
		userID:       userID,
		activityType: activityType,
		details:      details,
		ipAddress:    ipAddress,
		timestamp:    timestamp,
	}
}

func (l *UserLog) ID() uint             { return l.id }
func (l *UserLog) UserID() uint         { return l.userID }
func (l *UserLog) ActivityType() string { return l.activityType }
func (l *UserLog) Details() string      { return l.details }
func (l *UserLog) IPAddress() string    { return l.ipAddress }
func (l *UserLog) Timestamp() time.Time { return l.timestamp }

func (l *UserLog) SetID(id uint) {
	l.id = id
}
