package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// WindowService keeps the slot store populated for exactly the rolling
// window of dates and prunes everything outside it.
type WindowService struct {
	slotRepo   ports.SlotRepo
	logger     logger.Logger
	queues     []string
	windowDays int
	now        func() time.Time
}

func NewWindowService(slotRepo ports.SlotRepo, log logger.Logger, queues []string, windowDays int) *WindowService {
	return &WindowService{
		slotRepo:   slotRepo,
		logger:     log,
		queues:     queues,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Dates returns the window {today, ..., today+W-1}.
func (s *WindowService) Dates(today time.Time) []time.Time {
	dates := make([]time.Time, s.windowDays)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i)
	}
	return dates
}

// Contains reports whether date falls inside the window anchored at today.
func (s *WindowService) Contains(today, date time.Time) bool {
	return !date.Before(today) && date.Before(today.AddDate(0, 0, s.windowDays))
}

// Reconcile prunes slots outside the window and fills any missing grid rows
// inside it. Idempotent: a second call for the same day changes nothing, so
// it is safe on every read path.
func (s *WindowService) Reconcile(ctx context.Context) error {
	today := domain.DateOf(s.now())
	dates := s.Dates(today)
	last := dates[len(dates)-1]

	pruned, err := s.slotRepo.DeleteOutside(ctx, today, last)
	if err != nil {
		return fmt.Errorf("prune window: %w", err)
	}
	if pruned > 0 {
		s.logger.Info("stale slots pruned",
			logger.Int64("count", pruned),
			logger.String("today", today.Format(domain.DateLayout)),
		)
	}

	for _, date := range dates {
		if err := s.slotRepo.EnsureDate(ctx, date, s.queues); err != nil {
			return fmt.Errorf("ensure slots for %s: %w", date.Format(domain.DateLayout), err)
		}
	}

	return nil
}

// EnsureDate materializes one window date on demand, used when a booking
// targets a date the reconciler has not reached yet.
func (s *WindowService) EnsureDate(ctx context.Context, date time.Time) error {
	if err := s.slotRepo.EnsureDate(ctx, date, s.queues); err != nil {
		return fmt.Errorf("ensure slots for %s: %w", date.Format(domain.DateLayout), err)
	}
	return nil
}
