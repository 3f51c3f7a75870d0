package keysystem

import (
	"context"
	"time"

	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/shared/logger"
)

// RevertExpiredJob sweeps recurring key systems and reverts those
// whose paid period has lapsed. Registered with the scheduler as the
// daily billing job.
type RevertExpiredJob struct {
	repo   keysystem.Repository
	logger logger.Interface
}

// NewRevertExpiredJob creates the billing revert job.
func NewRevertExpiredJob(repo keysystem.Repository, logger logger.Interface) *RevertExpiredJob {
	return &RevertExpiredJob{repo: repo, logger: logger}
}

// Execute scans all key systems in pages and reverts expired ones.
// Returns the number reverted.
func (j *RevertExpiredJob) Execute(ctx context.Context) (int, error) {
	const pageSize = 200
	now := time.Now()
	reverted := 0

	for page := 1; ; page++ {
		items, _, err := j.repo.List(ctx, keysystem.ListFilter{Page: page, PageSize: pageSize})
		if err != nil {
			return reverted, err
		}
		if len(items) == 0 {
			break
		}

		for _, ks := range items {
			if !ks.PaymentExpired(now) {
				continue
			}
			ks.MarkUnpaid()
			if err := j.repo.Update(ctx, ks); err != nil {
				j.logger.Errorw("failed to revert expired payment",
					"key_system_id", ks.ID(),
					"error", err,
				)
				continue
			}
			reverted++
		}

		if len(items) < pageSize {
			break
		}
	}

	return reverted, nil
}
