package service

import (
	"context"
	"testing"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testQueues = []string{"research", "building", "training"}

// Monday 2025-03-10, 09:30 UTC.
var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newReservationService(t *testing.T, autoExtend bool) (*ReservationService, *mocks.MockSlotRepo, *mocks.MockNotifier) {
	t.Helper()
	slotRepo := mocks.NewMockSlotRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	window := NewWindowService(slotRepo, log, testQueues, 7)
	svc := NewReservationService(slotRepo, window, notifier, log, testQueues, autoExtend)
	svc.now = func() time.Time { return fixedNow }

	return svc, slotRepo, notifier
}

func TestReservationService_Reserve_Success(t *testing.T) {
	svc, slotRepo, notifier := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	slot := &domain.Slot{
		ID:        "s1",
		Date:      date,
		Hour:      14,
		Queue:     "research",
		Available: false,
		ClaimedBy: "alice",
	}

	slotRepo.EXPECT().EnsureDate(mock.Anything, date, testQueues).Return(nil)
	slotRepo.EXPECT().ClaimedAt(mock.Anything, date, 14).Return(nil, nil)
	slotRepo.EXPECT().Claim(mock.Anything, date, 14, "research", "alice").Return(slot, nil)
	notifier.EXPECT().NotifySlotReserved(mock.Anything, slot).Return()

	got, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "alice", got.ClaimedBy)
	assert.False(t, got.Available)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Reserve_EmptyClaimant(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:  fixedNow,
		Hour:  14,
		Queue: "research",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Reserve_HourOutOfRange(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     fixedNow,
		Hour:     24,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Reserve_UnknownQueue(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     fixedNow,
		Hour:     14,
		Queue:    "catering",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Reserve_OutsideWindow(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	// 8 days ahead with a 7-day window.
	date := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestReservationService_Reserve_PastHour(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	// 08:00 today already ended at 09:00, before the fixed 09:30 clock.
	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     fixedNow,
		Hour:     8,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotPassed)
}

func TestReservationService_Reserve_CurrentHourRejected(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	// The 09:00 slot is running at 09:30: already started, so not claimable.
	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     fixedNow,
		Hour:     9,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotPassed)
}

func TestReservationService_Reserve_CrossQueueConflict(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	held := []*domain.Slot{
		{ID: "s9", Date: date, Hour: 14, Queue: "building", Available: false, ClaimedBy: "alice"},
	}

	slotRepo.EXPECT().EnsureDate(mock.Anything, date, testQueues).Return(nil)
	slotRepo.EXPECT().ClaimedAt(mock.Anything, date, 14).Return(held, nil)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCrossQueueConflict)
}

func TestReservationService_Reserve_SameQueueRetryNotConflict(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	// Alice already holds this exact slot: not a cross-queue conflict, the
	// claim itself reports the slot as taken.
	held := []*domain.Slot{
		{ID: "s9", Date: date, Hour: 14, Queue: "research", Available: false, ClaimedBy: "alice"},
	}

	slotRepo.EXPECT().EnsureDate(mock.Anything, date, testQueues).Return(nil)
	slotRepo.EXPECT().ClaimedAt(mock.Anything, date, 14).Return(held, nil)
	slotRepo.EXPECT().Claim(mock.Anything, date, 14, "research", "alice").Return(nil, domain.ErrSlotTaken)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_Reserve_SlotTaken(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	slotRepo.EXPECT().EnsureDate(mock.Anything, date, testQueues).Return(nil)
	slotRepo.EXPECT().ClaimedAt(mock.Anything, date, 14).Return(nil, nil)
	slotRepo.EXPECT().Claim(mock.Anything, date, 14, "research", "alice").Return(nil, domain.ErrSlotTaken)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_Reserve_NoAutoExtend(t *testing.T) {
	svc, slotRepo, notifier := newReservationService(t, false)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	slot := &domain.Slot{ID: "s1", Date: date, Hour: 14, Queue: "research", ClaimedBy: "alice"}

	// No EnsureDate call with auto-extend off.
	slotRepo.EXPECT().ClaimedAt(mock.Anything, date, 14).Return(nil, nil)
	slotRepo.EXPECT().Claim(mock.Anything, date, 14, "research", "alice").Return(slot, nil)
	notifier.EXPECT().NotifySlotReserved(mock.Anything, slot).Return()

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, slotRepo, notifier := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	slot := &domain.Slot{ID: "s1", Date: date, Hour: 14, Queue: "research", Available: false, ClaimedBy: "alice"}

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	// Release hands back the reservation as it was held.
	slotRepo.EXPECT().Release(mock.Anything, "s1", "alice").Return(slot, nil)
	notifier.EXPECT().NotifySlotCancelled(mock.Anything, slot).Return()

	got, err := svc.Cancel(context.Background(), "s1", "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.ClaimedBy)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_EmptyClaimant(t *testing.T) {
	svc, _, _ := newReservationService(t, true)

	_, err := svc.Cancel(context.Background(), "s1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Cancel_SlotNotClaimed(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	slot := &domain.Slot{ID: "s1", Date: date, Hour: 14, Queue: "research", Available: true}

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, err := svc.Cancel(context.Background(), "s1", "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	slot := &domain.Slot{ID: "s1", Date: date, Hour: 14, Queue: "research", Available: false, ClaimedBy: "bob"}

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, err := svc.Cancel(context.Background(), "s1", "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_Cancel_AlreadyStarted(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	// The 09:00 slot is mid-flight at 09:30.
	date := domain.DateOf(fixedNow)
	slot := &domain.Slot{ID: "s1", Date: date, Hour: 9, Queue: "research", Available: false, ClaimedBy: "alice"}

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, err := svc.Cancel(context.Background(), "s1", "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotPassed)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, slotRepo, _ := newReservationService(t, true)

	slotRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSlotNotFound)

	_, err := svc.Cancel(context.Background(), "missing", "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}
