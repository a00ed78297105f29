package ports

import (
	"context"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
)

type BonusRepo interface {
	Create(ctx context.Context, b *domain.Bonus) error
	GetByID(ctx context.Context, id string) (*domain.Bonus, error)
	List(ctx context.Context) ([]*domain.Bonus, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	ActiveAt(ctx context.Context, at time.Time) ([]*domain.Bonus, error)
}
