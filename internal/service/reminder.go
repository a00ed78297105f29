package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReminderService struct {
	repo     ports.WeeklyEventRepo
	notifier ports.Notifier
	logger   logger.Logger
	now      func() time.Time
}

func NewReminderService(repo ports.WeeklyEventRepo, notifier ports.Notifier, log logger.Logger) *ReminderService {
	return &ReminderService{
		repo:     repo,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

func (s *ReminderService) Create(ctx context.Context, input domain.CreateWeeklyEventInput) (*domain.WeeklyEvent, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date before start_date", domain.ErrValidation)
	}
	if _, err := time.Parse("15:04", input.RemindAt); err != nil {
		return nil, fmt.Errorf("%w: invalid remind_at %q, expected HH:MM", domain.ErrValidation, input.RemindAt)
	}

	event := &domain.WeeklyEvent{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Messages:  input.Messages,
		StartDate: domain.DateOf(input.StartDate),
		EndDate:   domain.DateOf(input.EndDate),
		RemindAt:  input.RemindAt,
		Active:    true,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create weekly event: %w", err)
	}

	s.logger.Info("weekly event created",
		logger.String("event_id", event.ID),
		logger.String("name", event.Name),
	)

	return event, nil
}

func (s *ReminderService) List(ctx context.Context) ([]*domain.WeeklyEvent, error) {
	return s.repo.List(ctx)
}

// Toggle flips the active flag and returns the updated event.
func (s *ReminderService) Toggle(ctx context.Context, id string) (*domain.WeeklyEvent, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get weekly event: %w", err)
	}

	if err := s.repo.SetActive(ctx, id, !event.Active); err != nil {
		return nil, fmt.Errorf("toggle weekly event: %w", err)
	}
	event.Active = !event.Active

	return event, nil
}

func (s *ReminderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete weekly event: %w", err)
	}
	return nil
}

// Tick dispatches every due reminder. The last-sent watermark is advanced
// before the notification goes out, so an event fires at most once per day
// no matter how often the loop polls past the threshold.
func (s *ReminderService) Tick(ctx context.Context) error {
	now := s.now().UTC()
	today := domain.DateOf(now)

	events, err := s.repo.ListActiveOn(ctx, today)
	if err != nil {
		return fmt.Errorf("list due events: %w", err)
	}

	for _, event := range events {
		message := event.MessageFor(today)
		if message == "" {
			continue
		}

		due, err := event.RemindTimeOn(today)
		if err != nil {
			s.logger.Error("skipping weekly event with bad remind time",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if now.Before(due) {
			continue
		}
		if event.LastSent != nil && !event.LastSent.Before(today) {
			continue
		}

		if err := s.repo.MarkSent(ctx, event.ID, today); err != nil {
			s.logger.Error("failed to advance reminder watermark",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyReminder(ctx, event, message)

		s.logger.Info("weekly reminder sent",
			logger.String("event_id", event.ID),
			logger.String("name", event.Name),
		)
	}

	return nil
}
