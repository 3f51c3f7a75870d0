package backup

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
)

// Kind distinguishes scheduled backups from ones a user requested.
type Kind string

const (
	KindAuto   Kind = "auto"
	KindManual Kind = "manual"
)

// DatabaseCloser lets the service close and reopen the database around
// a restore.
type DatabaseCloser interface {
	Close() error
	Reopen() error
}

// Service creates, prunes and restores backup artifacts.
type Service struct {
	dbPath     string
	configFile string
	logger     logger.Interface
}

// NewService creates a backup service for the given database path.
func NewService(dbCfg config.DatabaseConfig, backupCfg config.BackupConfig, log logger.Interface) *Service {
	return &Service{
		dbPath:     dbCfg.Path,
		configFile: backupCfg.ConfigFile,
		logger:     log,
	}
}

// Settings loads the current backup settings.
func (s *Service) Settings() (Settings, error) {
	return LoadSettings(s.configFile)
}

// UpdateSettings persists new backup settings.
func (s *Service) UpdateSettings(settings Settings) error {
	return SaveSettings(s.configFile, settings)
}

// backupFiles lists the files included in every backup. Missing files
// are skipped; a fresh installation has no logo or settings yet.
func (s *Service) backupFiles() []string {
	return []string{
		s.dbPath,
		s.dbPath + ".salt",
		constants.SettingsFile,
		s.configFile,
		constants.VersionFile,
		constants.CompanyLogoFile,
	}
}

// Create produces a backup artifact and applies retention. The
// artifact is a zip archive when compression is enabled, otherwise a
// plain directory. LastBackup is only advanced for automatic backups
// so a manual backup does not silently skip the next scheduled one.
func (s *Service) Create(ctx context.Context, kind Kind) (string, error) {
	settings, err := s.Settings()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(settings.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := time.Now()
	name := fmt.Sprintf("%s%s_%s", constants.BackupPrefix, kind, now.Format("20060102_150405"))

	var artifact string
	if settings.Compress {
		artifact = filepath.Join(settings.BackupPath, name+".zip")
		err = s.createArchive(ctx, artifact)
	} else {
		artifact = filepath.Join(settings.BackupPath, name)
		err = s.createFolder(ctx, artifact)
	}
	if err != nil {
		return "", err
	}

	if kind == KindAuto {
		settings.LastBackup = &now
		if err := s.UpdateSettings(settings); err != nil {
			s.logger.Warnw("failed to record backup timestamp", "error", err)
		}
	}

	if err := s.applyRetention(settings); err != nil {
		s.logger.Warnw("failed to prune old backups", "error", err)
	}

	s.logger.Infow("backup created", "kind", kind, "artifact", artifact)
	return artifact, nil
}

func (s *Service) createArchive(ctx context.Context, artifact string) error {
	out, err := os.Create(artifact)
	if err != nil {
		return fmt.Errorf("failed to create backup archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	for _, path := range s.backupFiles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		src, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}

		w, err := zw.Create(filepath.Base(path))
		if err != nil {
			src.Close()
			return fmt.Errorf("failed to add %s to archive: %w", path, err)
		}
		if _, err := io.Copy(w, src); err != nil {
			src.Close()
			return fmt.Errorf("failed to write %s to archive: %w", path, err)
		}
		src.Close()
	}

	return nil
}

func (s *Service) createFolder(ctx context.Context, artifact string) error {
	if err := os.MkdirAll(artifact, 0755); err != nil {
		return fmt.Errorf("failed to create backup folder: %w", err)
	}

	for _, path := range s.backupFiles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := copyFile(path, filepath.Join(artifact, filepath.Base(path))); err != nil {
			return err
		}
	}

	return nil
}

// applyRetention keeps the newest MaxBackups artifacts and removes the
// rest. Only files and directories carrying the backup prefix are
// touched.
func (s *Service) applyRetention(settings Settings) error {
	entries, err := os.ReadDir(settings.BackupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []os.DirEntry
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), constants.BackupPrefix) {
			backups = append(backups, entry)
		}
	}
	if len(backups) <= settings.MaxBackups {
		return nil
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name() > backups[j].Name()
	})

	for _, entry := range backups[settings.MaxBackups:] {
		target := filepath.Join(settings.BackupPath, entry.Name())
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", entry.Name(), err)
		}
		s.logger.Infow("old backup removed", "artifact", target)
	}

	return nil
}

// List returns the backup artifacts in the backup directory, newest
// first.
func (s *Service) List() ([]string, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(settings.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), constants.BackupPrefix) {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Restore replaces the live files with the contents of a backup
// artifact. A restore point of the current state is taken first, and
// the database must be closed for the duration.
func (s *Service) Restore(ctx context.Context, db DatabaseCloser, artifact string) error {
	settings, err := s.Settings()
	if err != nil {
		return err
	}

	path := filepath.Join(settings.BackupPath, filepath.Base(artifact))
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("backup artifact not found: %w", err)
	}

	// Restore point so a failed restore is recoverable.
	if _, err := s.Create(ctx, KindManual); err != nil {
		return fmt.Errorf("failed to create restore point: %w", err)
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close database for restore: %w", err)
	}

	if info.IsDir() {
		err = s.restoreFromFolder(path)
	} else {
		err = s.restoreFromArchive(path)
	}
	if err != nil {
		return err
	}

	if err := db.Reopen(); err != nil {
		return fmt.Errorf("failed to reopen database after restore: %w", err)
	}

	s.logger.Infow("backup restored", "artifact", path)
	return nil
}

func (s *Service) restoreFromArchive(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open backup archive: %w", err)
	}
	defer zr.Close()

	targets := s.restoreTargets()
	for _, file := range zr.File {
		target, ok := targets[filepath.Base(file.Name)]
		if !ok {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to read %s from archive: %w", file.Name, err)
		}
		err = writeRestoredFile(target, src)
		src.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) restoreFromFolder(path string) error {
	targets := s.restoreTargets()
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read backup folder: %w", err)
	}

	for _, entry := range entries {
		target, ok := targets[entry.Name()]
		if !ok {
			continue
		}
		if err := copyFile(filepath.Join(path, entry.Name()), target); err != nil {
			return err
		}
	}

	return nil
}

// restoreTargets maps artifact member names back to their live paths.
func (s *Service) restoreTargets() map[string]string {
	targets := make(map[string]string)
	for _, path := range s.backupFiles() {
		targets[filepath.Base(path)] = path
	}
	return targets
}

func writeRestoredFile(target string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to restore %s: %w", target, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	return writeRestoredFile(dst, in)
}
