package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type draftExpirer interface {
	ExpireIdle(ctx context.Context) (int, error)
}

type occupancyAuditor interface {
	AuditOccupancy(ctx context.Context) (int, error)
}

// Scheduler runs the periodic maintenance: idle workflow drafts are dropped
// and the slot index is compared with the reservation log.
type Scheduler struct {
	drafts   draftExpirer
	auditor  occupancyAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	drafts draftExpirer,
	auditor occupancyAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		drafts:   drafts,
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.drafts.ExpireIdle(ctx)
	if err != nil {
		s.logger.Error("failed to expire idle drafts",
			logger.String("error", err.Error()),
		)
	} else if expired > 0 {
		s.logger.Info("idle drafts expired",
			logger.Int("count", expired),
		)
	}

	if _, err := s.auditor.AuditOccupancy(ctx); err != nil {
		s.logger.Error("occupancy audit failed",
			logger.String("error", err.Error()),
		)
	}
}
