package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type windowReconciler interface {
	Reconcile(ctx context.Context) error
}

type reminderDispatcher interface {
	Tick(ctx context.Context) error
}

// Scheduler is the single background loop: each tick slides the slot window
// forward and dispatches due weekly reminders.
type Scheduler struct {
	window    windowReconciler
	reminders reminderDispatcher
	interval  time.Duration
	logger    logger.Logger
}

func New(
	window windowReconciler,
	reminders reminderDispatcher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		window:    window,
		reminders: reminders,
		interval:  interval,
		logger:    logger,
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
	if err := s.window.Reconcile(ctx); err != nil {
		s.logger.Error("failed to reconcile slot window",
			logger.String("error", err.Error()),
		)
	}

	if err := s.reminders.Tick(ctx); err != nil {
		s.logger.Error("failed to dispatch reminders",
			logger.String("error", err.Error()),
		)
	}
}
