package ports

import (
	"context"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
)

type SlotRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	Get(ctx context.Context, date time.Time, hour int, queue string) (*domain.Slot, error)
	List(ctx context.Context, from, to time.Time) ([]*domain.Slot, error)
	EnsureDate(ctx context.Context, date time.Time, queues []string) error
	DeleteOutside(ctx context.Context, from, to time.Time) (int64, error)
	ClaimedAt(ctx context.Context, date time.Time, hour int) ([]*domain.Slot, error)
	Claim(ctx context.Context, date time.Time, hour int, queue, claimant string) (*domain.Slot, error)
	Release(ctx context.Context, id, claimant string) (*domain.Slot, error)
}
