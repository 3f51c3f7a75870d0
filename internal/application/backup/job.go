package backup

import (
	"context"
	"time"

	"keybuddy/internal/domain/setting"
	"keybuddy/internal/infrastructure/backup"
	"keybuddy/internal/shared/logger"
)

// ScheduledJob is the daily scheduler entry. Each run re-reads the
// settings and backs up only when the configured cadence says one is
// due, so a frequency change takes effect without a restart.
type ScheduledJob struct {
	engine      *backup.Service
	appSettings SettingsSource
	logger      logger.Interface
}

// NewScheduledJob creates the automatic backup job. appSettings may be
// nil; last-backup info is then not recorded.
func NewScheduledJob(engine *backup.Service, appSettings SettingsSource, logger logger.Interface) *ScheduledJob {
	return &ScheduledJob{engine: engine, appSettings: appSettings, logger: logger}
}

// Execute performs at most one automatic backup. Returns 1 when a
// backup was created, 0 when none was due.
func (j *ScheduledJob) Execute(ctx context.Context) (int, error) {
	settings, err := j.engine.Settings()
	if err != nil {
		return 0, err
	}
	if !settings.Enabled {
		return 0, nil
	}
	if !settings.ShouldPerformBackup(time.Now()) {
		return 0, nil
	}

	artifact, err := j.engine.Create(ctx, backup.KindAuto)
	if err != nil {
		return 0, err
	}

	if j.appSettings != nil {
		info := setting.BackupInfo{Timestamp: time.Now(), Path: artifact}
		if err := j.appSettings.RecordBackup(ctx, false, info); err != nil {
			j.logger.Warnw("failed to record backup info", "artifact", artifact, "error", err)
		}
	}

	j.logger.Infow("scheduled backup completed", "artifact", artifact)
	return 1, nil
}
