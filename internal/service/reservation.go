package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type windowExtender interface {
	Contains(today, date time.Time) bool
	EnsureDate(ctx context.Context, date time.Time) error
}

type ReservationService struct {
	slotRepo   ports.SlotRepo
	window     windowExtender
	notifier   ports.Notifier
	logger     logger.Logger
	queues     []string
	autoExtend bool
	now        func() time.Time
}

func NewReservationService(
	slotRepo ports.SlotRepo,
	window windowExtender,
	notifier ports.Notifier,
	log logger.Logger,
	queues []string,
	autoExtend bool,
) *ReservationService {
	return &ReservationService{
		slotRepo:   slotRepo,
		window:     window,
		notifier:   notifier,
		logger:     log,
		queues:     queues,
		autoExtend: autoExtend,
		now:        time.Now,
	}
}

// Reserve claims a free slot for the claimant. A claimant's hour is a single
// global resource: holding the same date+hour in another queue rejects the
// claim. The final store update is conditional on available = TRUE, so of
// two concurrent attempts exactly one succeeds.
func (s *ReservationService) Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Slot, error) {
	if input.Claimant == "" {
		return nil, fmt.Errorf("%w: claimant is required", domain.ErrValidation)
	}
	if input.Hour < 0 || input.Hour >= domain.HoursPerDay {
		return nil, fmt.Errorf("%w: hour %d out of range", domain.ErrValidation, input.Hour)
	}
	if !slices.Contains(s.queues, input.Queue) {
		return nil, fmt.Errorf("%w: unknown queue %q", domain.ErrValidation, input.Queue)
	}

	now := s.now().UTC()
	today := domain.DateOf(now)
	date := domain.DateOf(input.Date)

	if !s.window.Contains(today, date) {
		return nil, fmt.Errorf("%w: date %s is outside the booking window",
			domain.ErrSlotNotFound, date.Format(domain.DateLayout))
	}

	start := date.Add(time.Duration(input.Hour) * time.Hour)
	if !start.After(now) {
		return nil, domain.ErrSlotPassed
	}

	if s.autoExtend {
		if err := s.window.EnsureDate(ctx, date); err != nil {
			return nil, fmt.Errorf("extend window: %w", err)
		}
	}

	claimed, err := s.slotRepo.ClaimedAt(ctx, date, input.Hour)
	if err != nil {
		return nil, fmt.Errorf("check hour claims: %w", err)
	}
	for _, c := range claimed {
		if c.Queue != input.Queue && c.ClaimedBy == input.Claimant {
			return nil, fmt.Errorf("%w: %s", domain.ErrCrossQueueConflict, c.Queue)
		}
	}

	slot, err := s.slotRepo.Claim(ctx, date, input.Hour, input.Queue, input.Claimant)
	if err != nil {
		return nil, fmt.Errorf("claim slot: %w", err)
	}

	s.logger.Info("slot reserved",
		logger.String("slot_id", slot.ID),
		logger.String("date", date.Format(domain.DateLayout)),
		logger.String("time", domain.FormatHour(slot.Hour)),
		logger.String("queue", slot.Queue),
		logger.String("claimed_by", slot.ClaimedBy),
	)

	go s.notifier.NotifySlotReserved(context.WithoutCancel(ctx), slot)

	return slot, nil
}

// Cancel releases a claimed slot. Only the original claimant may cancel,
// and only while the slot has not started.
func (s *ReservationService) Cancel(ctx context.Context, slotID, claimant string) (*domain.Slot, error) {
	if claimant == "" {
		return nil, fmt.Errorf("%w: claimant is required", domain.ErrValidation)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	if slot.Available || slot.ClaimedBy == "" {
		return nil, domain.ErrSlotNotFound
	}
	if slot.ClaimedBy != claimant {
		return nil, domain.ErrNotOwner
	}
	if !slot.StartsAt().After(s.now().UTC()) {
		return nil, domain.ErrSlotPassed
	}

	released, err := s.slotRepo.Release(ctx, slotID, claimant)
	if err != nil {
		return nil, fmt.Errorf("release slot: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("slot_id", released.ID),
		logger.String("date", released.Date.Format(domain.DateLayout)),
		logger.String("time", domain.FormatHour(released.Hour)),
		logger.String("queue", released.Queue),
	)

	go s.notifier.NotifySlotCancelled(context.WithoutCancel(ctx), released)

	return released, nil
}
