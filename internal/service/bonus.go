package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BonusService struct {
	repo   ports.BonusRepo
	logger logger.Logger
	queues []string
	now    func() time.Time
}

func NewBonusService(repo ports.BonusRepo, log logger.Logger, queues []string) *BonusService {
	return &BonusService{
		repo:   repo,
		logger: log,
		queues: queues,
		now:    time.Now,
	}
}

func (s *BonusService) Create(ctx context.Context, input domain.CreateBonusInput) (*domain.Bonus, error) {
	if !slices.Contains(s.queues, input.Queue) {
		return nil, fmt.Errorf("%w: unknown queue %q", domain.ErrValidation, input.Queue)
	}
	if input.DurationHours < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one hour", domain.ErrValidation)
	}

	bonus := &domain.Bonus{
		ID:            uuid.New().String(),
		Queue:         input.Queue,
		StartAt:       input.StartAt.UTC().Truncate(time.Hour),
		DurationHours: input.DurationHours,
		Active:        true,
	}

	if err := s.repo.Create(ctx, bonus); err != nil {
		return nil, fmt.Errorf("create bonus: %w", err)
	}

	s.logger.Info("bonus created",
		logger.String("bonus_id", bonus.ID),
		logger.String("queue", bonus.Queue),
		logger.Int("duration_hours", bonus.DurationHours),
	)

	return bonus, nil
}

func (s *BonusService) List(ctx context.Context) ([]*domain.Bonus, error) {
	return s.repo.List(ctx)
}

// Toggle flips the active flag and returns the updated bonus.
func (s *BonusService) Toggle(ctx context.Context, id string) (*domain.Bonus, error) {
	bonus, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bonus: %w", err)
	}

	if err := s.repo.SetActive(ctx, id, !bonus.Active); err != nil {
		return nil, fmt.Errorf("toggle bonus: %w", err)
	}
	bonus.Active = !bonus.Active

	return bonus, nil
}

func (s *BonusService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bonus: %w", err)
	}
	return nil
}

// ActiveAt returns the bonuses running at the current instant.
func (s *BonusService) ActiveAt(ctx context.Context) ([]*domain.Bonus, error) {
	return s.repo.ActiveAt(ctx, s.now().UTC())
}

// OverlayHours maps a bonus onto the display window: for every window date
// it lists the hours of [start, end) falling on that date. Hours outside the
// window are dropped silently; a bonus may extend past the visible horizon.
func OverlayHours(b *domain.Bonus, dates []time.Time) map[string][]int {
	inWindow := make(map[string]bool, len(dates))
	for _, d := range dates {
		inWindow[d.Format(domain.DateLayout)] = true
	}

	hours := make(map[string][]int)
	for t := b.StartAt.Truncate(time.Hour); t.Before(b.EndsAt()); t = t.Add(time.Hour) {
		key := domain.DateOf(t).Format(domain.DateLayout)
		if inWindow[key] {
			hours[key] = append(hours[key], t.Hour())
		}
	}

	return hours
}
