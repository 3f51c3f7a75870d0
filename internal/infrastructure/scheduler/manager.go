// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"keybuddy/internal/shared/biztime"
	"keybuddy/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
//
// The scheduler is not started at boot: the first successful login
// starts it, so an unattended instance never touches the encrypted
// database files on its own.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterBackupJob registers the automatic backup job. The job runs
// every 24 hours starting immediately when the scheduler starts; the
// job itself decides whether a backup is due for the configured
// frequency, so running it more often than needed is harmless.
func (m *SchedulerManager) RegisterBackupJob(job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runBackup(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("backup"),
		gocron.WithName("auto-backup"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered backup job", "interval", "24h")
	return nil
}

func (m *SchedulerManager) runBackup(ctx context.Context, job BatchJob) {
	m.logger.Debugw("backup job started")

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("backup job failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("backup job completed",
			"backups", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no backup due",
			"duration", time.Since(startTime),
		)
	}
}

// RegisterBillingJob registers the billing maintenance job that
// reverts recurring key systems to unpaid once their billing period
// has elapsed:
// - runs every 24 hours, starting immediately
func (m *SchedulerManager) RegisterBillingJob(job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.runBillingRevert(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("billing", "revert"),
		gocron.WithName("billing-revert"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered billing job", "interval", "24h")
	return nil
}

func (m *SchedulerManager) runBillingRevert(ctx context.Context, job BatchJob) {
	m.logger.Debugw("billing revert job started")

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("billing revert job failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("billing periods expired",
			"count", count,
			"duration", time.Since(startTime),
		)
	}
}

// ========================================
// Scheduler Lifecycle Methods
// ========================================

// Start starts the scheduler and all registered jobs. Safe to call
// more than once; only the first call has an effect.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
