package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Frequency controls how often automatic backups run.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// IsValid reports whether the frequency is one of the known values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Settings is the persisted backup configuration. The JSON keys match
// the settings file carried over from earlier releases, so existing
// installations keep their configuration.
type Settings struct {
	Enabled     bool       `json:"enabled"`
	Frequency   Frequency  `json:"frequency"`
	BackupPath  string     `json:"backup_path"`
	MaxBackups  int        `json:"max_backups"`
	LastBackup  *time.Time `json:"last_backup,omitempty"`
	IncludeLogs bool       `json:"include_logs"`
	Compress    bool       `json:"compress"`
}

// DefaultSettings returns the configuration used when no settings file
// exists yet.
func DefaultSettings() Settings {
	return Settings{
		Enabled:     true,
		Frequency:   FrequencyDaily,
		BackupPath:  "backups",
		MaxBackups:  10,
		IncludeLogs: false,
		Compress:    true,
	}
}

// LoadSettings reads backup settings from the given file, falling back
// to defaults when the file does not exist. Unknown frequencies are
// normalized to daily.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to read backup settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse backup settings: %w", err)
	}

	if !settings.Frequency.IsValid() {
		settings.Frequency = FrequencyDaily
	}
	if settings.MaxBackups <= 0 {
		settings.MaxBackups = DefaultSettings().MaxBackups
	}

	return settings, nil
}

// SaveSettings writes backup settings atomically.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup settings: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace backup settings: %w", err)
	}

	return nil
}

// ShouldPerformBackup decides whether an automatic backup is due at
// the given time. Daily backups compare calendar dates so a backup at
// 23:59 is not repeated at 00:01 the next minute but does run the next
// day. Monthly backups compare calendar months, which handles month
// lengths without day arithmetic.
func (s Settings) ShouldPerformBackup(now time.Time) bool {
	if !s.Enabled {
		return false
	}
	if s.LastBackup == nil {
		return true
	}

	last := s.LastBackup.In(now.Location())

	switch s.Frequency {
	case FrequencyWeekly:
		return now.Sub(last) >= 7*24*time.Hour
	case FrequencyMonthly:
		return (now.Year()*12 + int(now.Month())) > (last.Year()*12 + int(last.Month()))
	default:
		ly, lm, ld := last.Date()
		ny, nm, nd := now.Date()
		return ly != ny || lm != nm || ld != nd
	}
}
