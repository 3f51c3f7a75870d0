package user

import "time"

// UserCreatedEvent is raised when a new user account is created
type UserCreatedEvent struct {
	UserID     uint
	Username   string
	Email      string
	Role       string
	OccurredAt time.Time
}

func NewUserCreatedEvent(userID uint, username, email, role string) *UserCreatedEvent {
	return &UserCreatedEvent{
		UserID:     userID,
		Username:   username,
		Email:      email,
		Role:       role,
		OccurredAt: time.Now(),
	}
}

// UserLoggedInEvent is raised on a successful login
type UserLoggedInEvent struct {
	UserID     uint
	Username   string
	OccurredAt time.Time
}

func NewUserLoggedInEvent(userID uint, username string) *UserLoggedInEvent {
	return &UserLoggedInEvent{
		UserID:     userID,
		Username:   username,
		OccurredAt: time.Now(),
	}
}

// UserRoleChangedEvent is raised when a user's role changes
type UserRoleChangedEvent struct {
	UserID     uint
	OldRole    string
	NewRole    string
	OccurredAt time.Time
}

func NewUserRoleChangedEvent(userID uint, oldRole, newRole string) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		UserID:     userID,
		OldRole:    oldRole,
		NewRole:    newRole,
		OccurredAt: time.Now(),
	}
}
