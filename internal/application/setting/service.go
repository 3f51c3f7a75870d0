package setting

import (
	"context"
	"strings"

	"keybuddy/internal/domain/setting"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// UpdateRequest carries a partial settings change. Nil fields are
// left untouched.
type UpdateRequest struct {
	Language                *string `json:"language,omitempty"`
	Theme                   *string `json:"theme,omitempty"`
	CompanyLogo             *string `json:"company_logo,omitempty"`
	SMTPHost                *string `json:"smtp_host,omitempty"`
	SMTPPort                *int    `json:"smtp_port,omitempty"`
	SMTPUser                *string `json:"smtp_user,omitempty"`
	SMTPPassword            *string `json:"smtp_password,omitempty"`
	DebugMode               *bool   `json:"debug_mode,omitempty"`
	BackupEmailConfirmation *bool   `json:"backup_email_confirmation,omitempty"`
	AutoLogoutEnabled       *bool   `json:"auto_logout_enabled,omitempty"`
}

// Service reads and updates the application settings document.
type Service struct {
	store  setting.Store
	logger logger.Interface
}

// NewService creates a settings service.
func NewService(store setting.Store, logger logger.Interface) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns a copy of the current settings.
func (s *Service) Get(ctx context.Context) setting.AppSettings {
	return s.store.Get()
}

// Update applies a partial change and persists the result.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (setting.AppSettings, error) {
	if req.Language != nil {
		lang := strings.ToLower(*req.Language)
		if lang != "sv" && lang != "en" {
			return setting.AppSettings{}, errors.NewValidationError("language must be sv or en")
		}
		*req.Language = lang
	}
	if req.Theme != nil && *req.Theme != "light" && *req.Theme != "dark" {
		return setting.AppSettings{}, errors.NewValidationError("theme must be light or dark")
	}
	if req.SMTPPort != nil && (*req.SMTPPort < 0 || *req.SMTPPort > 65535) {
		return setting.AppSettings{}, errors.NewValidationError("smtp port is out of range")
	}

	updated, err := s.store.Update(func(current *setting.AppSettings) {
		if req.Language != nil {
			current.Language = *req.Language
		}
		if req.Theme != nil {
			current.Theme = *req.Theme
		}
		if req.CompanyLogo != nil {
			current.CompanyLogo = *req.CompanyLogo
		}
		if req.SMTPHost != nil {
			current.SMTPHost = *req.SMTPHost
		}
		if req.SMTPPort != nil {
			current.SMTPPort = *req.SMTPPort
		}
		if req.SMTPUser != nil {
			current.SMTPUser = *req.SMTPUser
		}
		if req.SMTPPassword != nil {
			current.SMTPPassword = *req.SMTPPassword
		}
		if req.DebugMode != nil {
			current.DebugMode = *req.DebugMode
		}
		if req.BackupEmailConfirmation != nil {
			current.BackupEmailConfirmation = *req.BackupEmailConfirmation
		}
		if req.AutoLogoutEnabled != nil {
			current.AutoLogoutEnabled = *req.AutoLogoutEnabled
		}
	})
	if err != nil {
		return setting.AppSettings{}, err
	}

	s.logger.Infow("application settings updated")
	return updated, nil
}

// SetKeyPrice stores a unit price for a fabrikat/koncept pair.
func (s *Service) SetKeyPrice(ctx context.Context, fabrikat, koncept string, price float64) (setting.AppSettings, error) {
	if fabrikat == "" || koncept == "" {
		return setting.AppSettings{}, errors.NewValidationError("fabrikat and koncept are required")
	}
	if price < 0 {
		return setting.AppSettings{}, errors.NewValidationError("price cannot be negative")
	}
	key := fabrikat + "_" + koncept
	return s.store.Update(func(current *setting.AppSettings) {
		if current.KeyPricing == nil {
			current.KeyPricing = map[string]float64{}
		}
		current.KeyPricing[key] = price
	})
}

// DeleteKeyPrice removes a stored unit price.
func (s *Service) DeleteKeyPrice(ctx context.Context, fabrikat, koncept string) (setting.AppSettings, error) {
	key := fabrikat + "_" + koncept
	return s.store.Update(func(current *setting.AppSettings) {
		delete(current.KeyPricing, key)
	})
}

// RecordBackup stores the last backup info for the given trigger kind.
func (s *Service) RecordBackup(ctx context.Context, manual bool, info setting.BackupInfo) error {
	_, err := s.store.Update(func(current *setting.AppSettings) {
		if manual {
			current.LastManualBackupInfo = &info
		} else {
			current.LastAutoBackupInfo = &info
		}
	})
	return err
}
