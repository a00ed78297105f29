package ports

import (
	"context"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
)

type WeeklyEventRepo interface {
	Create(ctx context.Context, e *domain.WeeklyEvent) error
	GetByID(ctx context.Context, id string) (*domain.WeeklyEvent, error)
	List(ctx context.Context) ([]*domain.WeeklyEvent, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	ListActiveOn(ctx context.Context, day time.Time) ([]*domain.WeeklyEvent, error)
	MarkSent(ctx context.Context, id string, day time.Time) error
}
