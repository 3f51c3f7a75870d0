package backup

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/logger"
)

type fakeDatabaseCloser struct {
	closed   int
	reopened int
}

func (f *fakeDatabaseCloser) Close() error {
	f.closed++
	return nil
}

func (f *fakeDatabaseCloser) Reopen() error {
	f.reopened++
	return nil
}

// newTestEngine builds a backup service around a throwaway database
// file and settings file, all inside dir.
func newTestEngine(t *testing.T, dir string, settings Settings) (*Service, string) {
	t.Helper()

	dbPath := filepath.Join(dir, "database.db")
	if err := os.WriteFile(dbPath, []byte("sqlite-innehåll-v1"), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}

	configFile := filepath.Join(dir, "backup_config.json")
	settings.BackupPath = filepath.Join(dir, "backups")
	if err := SaveSettings(configFile, settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	engine := NewService(
		config.DatabaseConfig{Path: dbPath},
		config.BackupConfig{ConfigFile: configFile},
		log,
	)
	return engine, dbPath
}

func TestService_CreateArchive(t *testing.T) {
	dir := t.TempDir()
	settings := DefaultSettings()
	engine, _ := newTestEngine(t, dir, settings)

	artifact, err := engine.Create(context.Background(), KindManual)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !strings.HasSuffix(artifact, ".zip") {
		t.Errorf("expected zip artifact with compression enabled, got %s", artifact)
	}
	if _, err := os.Stat(artifact); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestService_CreateFolderWhenUncompressed(t *testing.T) {
	dir := t.TempDir()
	settings := DefaultSettings()
	settings.Compress = false
	engine, dbPath := newTestEngine(t, dir, settings)

	artifact, err := engine.Create(context.Background(), KindManual)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	info, err := os.Stat(artifact)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected a folder artifact when compression is off")
	}

	copied, err := os.ReadFile(filepath.Join(artifact, filepath.Base(dbPath)))
	if err != nil {
		t.Fatalf("database missing from backup: %v", err)
	}
	if string(copied) != "sqlite-innehåll-v1" {
		t.Errorf("backup content mismatch: %q", copied)
	}
}

func TestService_AutoBackupAdvancesLastBackup(t *testing.T) {
	dir := t.TempDir()
	engine, _ := newTestEngine(t, dir, DefaultSettings())

	if _, err := engine.Create(context.Background(), KindAuto); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	settings, err := engine.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings.LastBackup == nil {
		t.Error("expected LastBackup to be recorded for an automatic backup")
	}
}

func TestService_ManualBackupKeepsLastBackup(t *testing.T) {
	dir := t.TempDir()
	engine, _ := newTestEngine(t, dir, DefaultSettings())

	if _, err := engine.Create(context.Background(), KindManual); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	settings, err := engine.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings.LastBackup != nil {
		t.Error("a manual backup must not advance the schedule")
	}
}

func TestService_RetentionPrunesOldest(t *testing.T) {
	dir := t.TempDir()
	settings := DefaultSettings()
	settings.MaxBackups = 2
	engine, _ := newTestEngine(t, dir, settings)
	ctx := context.Background()

	// Artifact names carry a second-resolution timestamp.
	for i := 0; i < 3; i++ {
		if _, err := engine.Create(ctx, KindManual); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		time.Sleep(1100 * time.Millisecond)
	}

	names, err := engine.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 artifacts after retention, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] < names[i] {
			t.Errorf("List() not newest first: %v", names)
		}
	}
}

func TestService_RestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	engine, dbPath := newTestEngine(t, dir, DefaultSettings())
	ctx := context.Background()

	artifact, err := engine.Create(ctx, KindManual)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := os.WriteFile(dbPath, []byte("korrupt-innehåll"), 0644); err != nil {
		t.Fatalf("overwrite database: %v", err)
	}

	closer := &fakeDatabaseCloser{}
	if err := engine.Restore(ctx, closer, filepath.Base(artifact)); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read restored database: %v", err)
	}
	if string(restored) != "sqlite-innehåll-v1" {
		t.Errorf("restored content = %q", restored)
	}
	if closer.closed != 1 || closer.reopened != 1 {
		t.Errorf("database close/reopen counts = %d/%d", closer.closed, closer.reopened)
	}
}

func TestService_RestoreUnknownArtifact(t *testing.T) {
	dir := t.TempDir()
	engine, _ := newTestEngine(t, dir, DefaultSettings())

	if err := engine.Restore(context.Background(), &fakeDatabaseCloser{}, "nyckelhanteraren_backup_saknas.zip"); err == nil {
		t.Error("expected error for missing artifact")
	}
}
