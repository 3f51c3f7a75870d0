package backup

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"keybuddy/internal/domain/setting"
	"keybuddy/internal/domain/user"
	vo "keybuddy/internal/domain/user/value_objects"
	"keybuddy/internal/domain/userlog"
	backupInfra "keybuddy/internal/infrastructure/backup"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/logger"
)

type fakeMailer struct {
	sentTo       []string
	sentArtifact []string
}

func (m *fakeMailer) SendBackupConfirmationEmail(to, artifact string) error {
	m.sentTo = append(m.sentTo, to)
	m.sentArtifact = append(m.sentArtifact, artifact)
	return nil
}

type fakeSettingsSource struct {
	settings setting.AppSettings
	manual   []setting.BackupInfo
	auto     []setting.BackupInfo
}

func (s *fakeSettingsSource) Get(ctx context.Context) setting.AppSettings {
	return s.settings
}

func (s *fakeSettingsSource) RecordBackup(ctx context.Context, manual bool, info setting.BackupInfo) error {
	if manual {
		s.manual = append(s.manual, info)
	} else {
		s.auto = append(s.auto, info)
	}
	return nil
}

type fakeUserDirectory struct {
	user *user.User
}

func (d *fakeUserDirectory) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if d.user != nil && d.user.ID() == id {
		return d.user, nil
	}
	return nil, nil
}

type fakeLogRepo struct {
	entries []*userlog.UserLog
}

func (r *fakeLogRepo) Create(ctx context.Context, entry *userlog.UserLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLogRepo) List(ctx context.Context, filter userlog.ListFilter) ([]*userlog.UserLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func newBackupUser(t *testing.T) *user.User {
	t.Helper()

	username, err := vo.NewUsername("greta")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}
	email, err := vo.NewEmail("greta@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	u, err := user.NewUser(username, email, "Greta Nilsson", authorization.RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	u.SetID(1)
	return u
}

func newManualTestService(t *testing.T, appSettings *fakeSettingsSource, mailer *fakeMailer) (*Service, *fakeLogRepo) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "database.db")
	if err := os.WriteFile(dbPath, []byte("databas"), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}
	configFile := filepath.Join(dir, "backup_config.json")
	engineSettings := backupInfra.DefaultSettings()
	engineSettings.BackupPath = filepath.Join(dir, "backups")
	if err := backupInfra.SaveSettings(configFile, engineSettings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	engine := backupInfra.NewService(
		config.DatabaseConfig{Path: dbPath},
		config.BackupConfig{ConfigFile: configFile},
		log,
	)

	logRepo := &fakeLogRepo{}
	users := &fakeUserDirectory{user: newBackupUser(t)}
	return NewService(engine, nil, logRepo, users, appSettings, mailer, log), logRepo
}

func TestService_CreateManualSendsConfirmation(t *testing.T) {
	appSettings := &fakeSettingsSource{settings: setting.AppSettings{BackupEmailConfirmation: true}}
	mailer := &fakeMailer{}
	svc, logRepo := newManualTestService(t, appSettings, mailer)

	artifact, err := svc.CreateManual(context.Background(), 1, "10.0.0.5")
	if err != nil {
		t.Fatalf("CreateManual() error = %v", err)
	}
	if artifact == "" {
		t.Fatal("expected an artifact path")
	}

	if len(mailer.sentTo) != 1 || mailer.sentTo[0] != "greta@example.com" {
		t.Errorf("confirmation recipients = %v", mailer.sentTo)
	}
	if len(appSettings.manual) != 1 || appSettings.manual[0].Path != artifact {
		t.Errorf("manual backup info = %+v", appSettings.manual)
	}
	if len(appSettings.auto) != 0 {
		t.Errorf("unexpected auto backup info = %+v", appSettings.auto)
	}
	if len(logRepo.entries) != 1 {
		t.Errorf("expected one activity entry, got %d", len(logRepo.entries))
	}
}

func TestService_CreateManualSkipsConfirmationWhenOff(t *testing.T) {
	appSettings := &fakeSettingsSource{settings: setting.AppSettings{BackupEmailConfirmation: false}}
	mailer := &fakeMailer{}
	svc, _ := newManualTestService(t, appSettings, mailer)

	if _, err := svc.CreateManual(context.Background(), 1, "10.0.0.5"); err != nil {
		t.Fatalf("CreateManual() error = %v", err)
	}
	if len(mailer.sentTo) != 0 {
		t.Errorf("expected no confirmation e-mail, sent to %v", mailer.sentTo)
	}
}
