package backup

import (
	"context"
	"time"

	"keybuddy/internal/domain/setting"
	"keybuddy/internal/domain/user"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/infrastructure/backup"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// ConfirmationMailer sends the optional message confirming a backup.
type ConfirmationMailer interface {
	SendBackupConfirmationEmail(to, artifact string) error
}

// SettingsSource exposes the application settings controlling the
// confirmation e-mail and records last-backup info.
type SettingsSource interface {
	Get(ctx context.Context) setting.AppSettings
	RecordBackup(ctx context.Context, manual bool, info setting.BackupInfo) error
}

// UserDirectory resolves the requesting user's e-mail address.
type UserDirectory interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// Service fronts the backup engine for the API: manual backups,
// restore, settings and the artifact list. Activity entries are
// written for created and restored backups.
type Service struct {
	engine      *backup.Service
	db          backup.DatabaseCloser
	logRepo     userlog.Repository
	users       UserDirectory
	appSettings SettingsSource
	mailer      ConfirmationMailer
	logger      logger.Interface
}

// NewService creates a backup application service. users, appSettings
// and mailer may be nil; the confirmation e-mail is then skipped.
func NewService(
	engine *backup.Service,
	db backup.DatabaseCloser,
	logRepo userlog.Repository,
	users UserDirectory,
	appSettings SettingsSource,
	mailer ConfirmationMailer,
	logger logger.Interface,
) *Service {
	return &Service{
		engine:      engine,
		db:          db,
		logRepo:     logRepo,
		users:       users,
		appSettings: appSettings,
		mailer:      mailer,
		logger:      logger,
	}
}

// SettingsResponse mirrors the persisted backup configuration.
type SettingsResponse struct {
	Enabled     bool       `json:"enabled"`
	Frequency   string     `json:"frequency"`
	BackupPath  string     `json:"backup_path"`
	MaxBackups  int        `json:"max_backups"`
	LastBackup  *time.Time `json:"last_backup,omitempty"`
	IncludeLogs bool       `json:"include_logs"`
	Compress    bool       `json:"compress"`
}

// UpdateSettingsRequest carries a full settings replacement.
type UpdateSettingsRequest struct {
	Enabled     bool   `json:"enabled"`
	Frequency   string `json:"frequency"`
	BackupPath  string `json:"backup_path"`
	MaxBackups  int    `json:"max_backups"`
	IncludeLogs bool   `json:"include_logs"`
	Compress    bool   `json:"compress"`
}

// CreateManual runs a backup now, outside the schedule.
func (s *Service) CreateManual(ctx context.Context, userID uint, ipAddress string) (string, error) {
	artifact, err := s.engine.Create(ctx, backup.KindManual)
	if err != nil {
		return "", err
	}
	s.recordActivity(ctx, userID, constants.ActivityBackupCreated, artifact, ipAddress)
	s.recordBackupInfo(ctx, true, artifact)
	s.sendConfirmation(ctx, userID, artifact)
	return artifact, nil
}

// Restore replaces the live database from a backup artifact. The
// engine takes a safety backup first and reopens the database after.
func (s *Service) Restore(ctx context.Context, artifact string, userID uint, ipAddress string) error {
	if artifact == "" {
		return errors.NewValidationError("backup artifact is required")
	}
	if err := s.engine.Restore(ctx, s.db, artifact); err != nil {
		return err
	}
	s.recordActivity(ctx, userID, constants.ActivityBackupRestored, artifact, ipAddress)
	return nil
}

// List returns the available backup artifacts, newest first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.engine.List()
}

// Settings returns the current backup configuration.
func (s *Service) Settings(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.engine.Settings()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// UpdateSettings replaces the backup configuration. The last backup
// timestamp is preserved.
func (s *Service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	frequency := backup.Frequency(req.Frequency)
	if !frequency.IsValid() {
		return nil, errors.NewValidationError("frequency must be daily, weekly or monthly")
	}
	if req.MaxBackups < 1 {
		return nil, errors.NewValidationError("max backups must be at least 1")
	}
	if req.BackupPath == "" {
		return nil, errors.NewValidationError("backup path is required")
	}

	current, err := s.engine.Settings()
	if err != nil {
		return nil, err
	}

	updated := backup.Settings{
		Enabled:     req.Enabled,
		Frequency:   frequency,
		BackupPath:  req.BackupPath,
		MaxBackups:  req.MaxBackups,
		LastBackup:  current.LastBackup,
		IncludeLogs: req.IncludeLogs,
		Compress:    req.Compress,
	}
	if err := s.engine.UpdateSettings(updated); err != nil {
		return nil, err
	}

	return toSettingsResponse(updated), nil
}

// recordBackupInfo stores a last-backup entry in the application
// settings so the UI can show when and where the latest copy went.
func (s *Service) recordBackupInfo(ctx context.Context, manual bool, artifact string) {
	if s.appSettings == nil {
		return
	}
	info := setting.BackupInfo{Timestamp: time.Now(), Path: artifact}
	if err := s.appSettings.RecordBackup(ctx, manual, info); err != nil {
		s.logger.Warnw("failed to record backup info", "artifact", artifact, "error", err)
	}
}

// sendConfirmation mails the requesting user when the
// backup_email_confirmation setting is on. Best effort; a failed send
// never fails the backup.
func (s *Service) sendConfirmation(ctx context.Context, userID uint, artifact string) {
	if s.mailer == nil || s.appSettings == nil || s.users == nil {
		return
	}
	if !s.appSettings.Get(ctx).BackupEmailConfirmation {
		return
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil || u == nil {
		s.logger.Warnw("backup confirmation skipped, user lookup failed", "user_id", userID, "error", err)
		return
	}
	if err := s.mailer.SendBackupConfirmationEmail(u.Email().String(), artifact); err != nil {
		s.logger.Warnw("failed to send backup confirmation email", "artifact", artifact, "error", err)
	}
}

func (s *Service) recordActivity(ctx context.Context, userID uint, activityType, details, ipAddress string) {
	entry, err := userlog.NewUserLog(userID, activityType, details, ipAddress)
	if err != nil {
		s.logger.Warnw("failed to build activity log entry", "error", err)
		return
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.Warnw("failed to record activity", "activity", activityType, "error", err)
	}
}

func toSettingsResponse(settings backup.Settings) *SettingsResponse {
	return &SettingsResponse{
		Enabled:     settings.Enabled,
		Frequency:   string(settings.Frequency),
		BackupPath:  settings.BackupPath,
		MaxBackups:  settings.MaxBackups,
		LastBackup:  settings.LastBackup,
		IncludeLogs: settings.IncludeLogs,
		Compress:    settings.Compress,
	}
}
