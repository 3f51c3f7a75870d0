package backup

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	backupInfra "keybuddy/internal/infrastructure/backup"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/logger"
)

func newTestJob(t *testing.T, settings backupInfra.Settings) (*ScheduledJob, *backupInfra.Service) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "database.db")
	if err := os.WriteFile(dbPath, []byte("databas"), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}

	configFile := filepath.Join(dir, "backup_config.json")
	settings.BackupPath = filepath.Join(dir, "backups")
	if err := backupInfra.SaveSettings(configFile, settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	engine := backupInfra.NewService(
		config.DatabaseConfig{Path: dbPath},
		config.BackupConfig{ConfigFile: configFile},
		log,
	)
	return NewScheduledJob(engine, nil, log), engine
}

func TestScheduledJob_BacksUpWhenDue(t *testing.T) {
	settings := backupInfra.DefaultSettings()
	job, engine := newTestJob(t, settings)

	count, err := job.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("Execute() = %d, want 1", count)
	}

	names, err := engine.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected one artifact, got %v", names)
	}

	updated, err := engine.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if updated.LastBackup == nil {
		t.Error("expected LastBackup to advance")
	}
}

func TestScheduledJob_SkipsWhenDisabled(t *testing.T) {
	settings := backupInfra.DefaultSettings()
	settings.Enabled = false
	job, engine := newTestJob(t, settings)

	count, err := job.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Execute() = %d, want 0", count)
	}
	if names, _ := engine.List(); len(names) != 0 {
		t.Errorf("expected no artifacts, got %v", names)
	}
}

func TestScheduledJob_SkipsWhenNotDue(t *testing.T) {
	recent := time.Now()
	settings := backupInfra.DefaultSettings()
	settings.LastBackup = &recent
	job, engine := newTestJob(t, settings)

	count, err := job.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Execute() = %d, want 0", count)
	}
	if names, _ := engine.List(); len(names) != 0 {
		t.Errorf("expected no artifacts, got %v", names)
	}
}

func TestScheduledJob_RunsAgainWhenOverdue(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	settings := backupInfra.DefaultSettings()
	settings.LastBackup = &old
	job, _ := newTestJob(t, settings)

	count, err := job.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Execute() = %d, want 1", count)
	}
}
