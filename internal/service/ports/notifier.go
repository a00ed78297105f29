package ports

import (
	"context"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
)

type Notifier interface {
	NotifySlotReserved(ctx context.Context, slot *domain.Slot)
	NotifySlotCancelled(ctx context.Context, slot *domain.Slot)
	NotifyReminder(ctx context.Context, event *domain.WeeklyEvent, message string)
}
