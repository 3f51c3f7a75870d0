package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func ptr(t time.Time) *time.Time { return &t }

func TestFrequency_IsValid(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly} {
		if !f.IsValid() {
			t.Errorf("%q should be valid", f)
		}
	}
	for _, f := range []Frequency{"", "hourly", "Daily"} {
		if f.IsValid() {
			t.Errorf("%q should not be valid", f)
		}
	}
}

func TestSettings_ShouldPerformBackup(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		settings Settings
		now      time.Time
		want     bool
	}{
		{
			name:     "disabled never backs up",
			settings: Settings{Enabled: false, Frequency: FrequencyDaily, LastBackup: nil},
			now:      now,
			want:     false,
		},
		{
			name:     "no previous backup",
			settings: Settings{Enabled: true, Frequency: FrequencyDaily},
			now:      now,
			want:     true,
		},
		{
			name:     "daily same calendar day",
			settings: Settings{Enabled: true, Frequency: FrequencyDaily, LastBackup: ptr(now.Add(-2 * time.Hour))},
			now:      now,
			want:     false,
		},
		{
			name: "daily late evening to next morning",
			settings: Settings{Enabled: true, Frequency: FrequencyDaily,
				LastBackup: ptr(time.Date(2024, time.March, 14, 23, 59, 0, 0, time.UTC))},
			now:  time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC),
			want: true,
		},
		{
			name:     "weekly six days ago",
			settings: Settings{Enabled: true, Frequency: FrequencyWeekly, LastBackup: ptr(now.Add(-6 * 24 * time.Hour))},
			now:      now,
			want:     false,
		},
		{
			name:     "weekly seven days ago",
			settings: Settings{Enabled: true, Frequency: FrequencyWeekly, LastBackup: ptr(now.Add(-7 * 24 * time.Hour))},
			now:      now,
			want:     true,
		},
		{
			name: "monthly same month",
			settings: Settings{Enabled: true, Frequency: FrequencyMonthly,
				LastBackup: ptr(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))},
			now:  now,
			want: false,
		},
		{
			name: "monthly january 31 to february 1",
			settings: Settings{Enabled: true, Frequency: FrequencyMonthly,
				LastBackup: ptr(time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC))},
			now:  time.Date(2024, time.February, 1, 1, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "monthly december to january",
			settings: Settings{Enabled: true, Frequency: FrequencyMonthly,
				LastBackup: ptr(time.Date(2023, time.December, 15, 12, 0, 0, 0, time.UTC))},
			now:  time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.ShouldPerformBackup(tt.now); got != tt.want {
				t.Errorf("ShouldPerformBackup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	defaults := DefaultSettings()
	if settings.Frequency != defaults.Frequency || settings.MaxBackups != defaults.MaxBackups {
		t.Errorf("LoadSettings() = %+v, want defaults %+v", settings, defaults)
	}
}

func TestLoadSettings_NormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup_config.json")
	raw := `{"enabled": true, "frequency": "hourly", "backup_path": "backups", "max_backups": 0}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.Frequency != FrequencyDaily {
		t.Errorf("Frequency = %v, want %v", settings.Frequency, FrequencyDaily)
	}
	if settings.MaxBackups != DefaultSettings().MaxBackups {
		t.Errorf("MaxBackups = %d, want %d", settings.MaxBackups, DefaultSettings().MaxBackups)
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "backup_config.json")

	last := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	in := Settings{
		Enabled:    true,
		Frequency:  FrequencyWeekly,
		BackupPath: "archive",
		MaxBackups: 5,
		LastBackup: &last,
		Compress:   true,
	}

	if err := SaveSettings(path, in); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	out, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if out.Frequency != in.Frequency || out.BackupPath != in.BackupPath || out.MaxBackups != in.MaxBackups {
		t.Errorf("LoadSettings() = %+v, want %+v", out, in)
	}
	if out.LastBackup == nil || !out.LastBackup.Equal(last) {
		t.Errorf("LastBackup = %v, want %v", out.LastBackup, last)
	}
}
