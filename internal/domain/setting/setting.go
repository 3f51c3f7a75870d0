// Package setting models the flat application settings persisted in
// app_settings.json. Keys match the legacy file so existing installs
// load unchanged.
package setting

import "time"

// BackupInfo records the last completed backup of one trigger kind.
type BackupInfo struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// AppSettings is the full settings document.
type AppSettings struct {
	Language    string `json:"language"`
	Theme       string `json:"theme"`
	CompanyLogo string `json:"company_logo"`

	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`

	AppVersion string `json:"app_version"`
	DebugMode  bool   `json:"debug_mode"`

	// KeyPricing maps "fabrikat_koncept" to a unit price.
	KeyPricing map[string]float64 `json:"key_pricing"`

	BackupEmailConfirmation bool `json:"backup_email_confirmation"`
	AutoLogoutEnabled       bool `json:"auto_logout_enabled"`

	LastAutoBackupInfo   *BackupInfo `json:"last_auto_backup_info,omitempty"`
	LastManualBackupInfo *BackupInfo `json:"last_manual_backup_info,omitempty"`
}

// Defaults returns the settings used when no file exists yet.
func Defaults() AppSettings {
	return AppSettings{
		Language:   "sv",
		Theme:      "light",
		KeyPricing: map[string]float64{},
	}
}

// Clone returns a deep copy so observers never share mutable state.
func (s AppSettings) Clone() AppSettings {
	out := s
	out.KeyPricing = make(map[string]float64, len(s.KeyPricing))
	for k, v := range s.KeyPricing {
		out.KeyPricing[k] = v
	}
	if s.LastAutoBackupInfo != nil {
		info := *s.LastAutoBackupInfo
		out.LastAutoBackupInfo = &info
	}
	if s.LastManualBackupInfo != nil {
		info := *s.LastManualBackupInfo
		out.LastManualBackupInfo = &info
	}
	return out
}
