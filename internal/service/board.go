package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type windowReconciler interface {
	Reconcile(ctx context.Context) error
	Dates(today time.Time) []time.Time
}

// BoardService produces the display state: the classified slot grid with
// bonus annotations plus the head of every queue.
type BoardService struct {
	slotRepo  ports.SlotRepo
	bonusRepo ports.BonusRepo
	window    windowReconciler
	logger    logger.Logger
	queues    []string
	now       func() time.Time
}

func NewBoardService(
	slotRepo ports.SlotRepo,
	bonusRepo ports.BonusRepo,
	window windowReconciler,
	log logger.Logger,
	queues []string,
) *BoardService {
	return &BoardService{
		slotRepo:  slotRepo,
		bonusRepo: bonusRepo,
		window:    window,
		logger:    log,
		queues:    queues,
		now:       time.Now,
	}
}

func (s *BoardService) Board(ctx context.Context) (*domain.Board, error) {
	if err := s.window.Reconcile(ctx); err != nil {
		return nil, fmt.Errorf("reconcile window: %w", err)
	}

	now := s.now().UTC()
	today := domain.DateOf(now)
	dates := s.window.Dates(today)

	slots, err := s.slotRepo.List(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("list window slots: %w", err)
	}

	bonuses, err := s.bonusRepo.ActiveAt(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list active bonuses: %w", err)
	}

	return BuildBoard(s.queues, dates, slots, bonuses, now), nil
}

// BuildBoard assembles the board from query results. It is pure: slots are
// only read, so bonus overlays and the past-holder derivation never leak
// back into the store.
func BuildBoard(queues []string, dates []time.Time, slots []*domain.Slot, bonuses []*domain.Bonus, now time.Time) *domain.Board {
	type key struct {
		date  string
		queue string
		hour  int
	}
	byKey := make(map[key]*domain.Slot, len(slots))
	for _, s := range slots {
		byKey[key{s.Date.Format(domain.DateLayout), s.Queue, s.Hour}] = s
	}

	// queue -> date -> hour set
	bonusHours := make(map[string]map[string]map[int]bool)
	for _, b := range bonuses {
		overlay := OverlayHours(b, dates)
		if bonusHours[b.Queue] == nil {
			bonusHours[b.Queue] = make(map[string]map[int]bool)
		}
		for date, hours := range overlay {
			if bonusHours[b.Queue][date] == nil {
				bonusHours[b.Queue][date] = make(map[int]bool)
			}
			for _, h := range hours {
				bonusHours[b.Queue][date][h] = true
			}
		}
	}

	board := &domain.Board{
		Queues:      queues,
		Days:        make([]domain.BoardDay, 0, len(dates)),
		Heads:       make(map[string]*domain.QueueHead, len(queues)),
		GeneratedAt: now,
	}
	for _, q := range queues {
		board.Heads[q] = nil
	}

	for _, date := range dates {
		dateKey := date.Format(domain.DateLayout)
		day := domain.BoardDay{
			Date:   dateKey,
			Queues: make(map[string][]domain.SlotView, len(queues)),
		}

		for _, q := range queues {
			views := make([]domain.SlotView, 0, domain.HoursPerDay)
			for hour := 0; hour < domain.HoursPerDay; hour++ {
				view := domain.SlotView{
					Time:      domain.FormatHour(hour),
					Available: true,
				}

				slot := byKey[key{dateKey, q, hour}]
				if slot != nil {
					view.ID = slot.ID
					view.Available = slot.Available
					view.ClaimedBy = slot.ClaimedBy
				}

				start := date.Add(time.Duration(hour) * time.Hour)
				timing := Classify(start, now)
				view.Past = timing.Past
				view.Current = timing.Current

				// Expired slots nobody claimed render as held by the
				// past placeholder; the store row stays untouched.
				if view.Past && view.Available {
					view.Available = false
					view.ClaimedBy = domain.PastHolder
				}

				view.Bonus = bonusHours[q][dateKey][hour]

				if board.Heads[q] == nil && isQueueHead(slot, timing) {
					board.Heads[q] = &domain.QueueHead{
						SlotID:    slot.ID,
						Date:      date.Format(domain.HeadDateLayout),
						Time:      domain.FormatHour(hour),
						ClaimedBy: slot.ClaimedBy,
						Current:   timing.Current,
					}
				}

				views = append(views, view)
			}
			day.Queues[q] = views
		}

		board.Days = append(board.Days, day)
	}

	return board
}

// isQueueHead reports whether a slot is the one a queue is serving: the
// first genuinely claimed slot that is current or still ahead. Chronological
// scan order makes the first match the head.
func isQueueHead(slot *domain.Slot, timing Timing) bool {
	if slot == nil || slot.Available || slot.ClaimedBy == "" {
		return false
	}
	return !timing.Past
}
