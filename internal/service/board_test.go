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
)

func TestBuildBoard_Shape(t *testing.T) {
	today := domain.DateOf(fixedNow)
	dates := []time.Time{today, today.AddDate(0, 0, 1)}

	board := BuildBoard(testQueues, dates, nil, nil, fixedNow)

	require.Len(t, board.Days, 2)
	assert.Equal(t, today.Format(domain.DateLayout), board.Days[0].Date)
	for _, q := range testQueues {
		require.Len(t, board.Days[0].Queues[q], domain.HoursPerDay)
		assert.Nil(t, board.Heads[q])
	}
}

func TestBuildBoard_PastFreeSlotsExpire(t *testing.T) {
	today := domain.DateOf(fixedNow)
	dates := []time.Time{today}

	board := BuildBoard(testQueues, dates, nil, nil, fixedNow)

	views := board.Days[0].Queues["research"]

	// 08:00 ended before the 09:30 clock: rendered as held by the placeholder.
	assert.True(t, views[8].Past)
	assert.False(t, views[8].Available)
	assert.Equal(t, domain.PastHolder, views[8].ClaimedBy)

	// 09:00 is the running hour.
	assert.True(t, views[9].Current)
	assert.False(t, views[9].Past)

	// 10:00 is still open.
	assert.False(t, views[10].Past)
	assert.True(t, views[10].Available)
	assert.Empty(t, views[10].ClaimedBy)
}

func TestBuildBoard_ClaimedSlotSurvivesPast(t *testing.T) {
	today := domain.DateOf(fixedNow)
	dates := []time.Time{today}

	slots := []*domain.Slot{
		{ID: "s1", Date: today, Hour: 7, Queue: "research", Available: false, ClaimedBy: "alice"},
	}

	board := BuildBoard(testQueues, dates, slots, nil, fixedNow)

	view := board.Days[0].Queues["research"][7]
	assert.True(t, view.Past)
	assert.Equal(t, "alice", view.ClaimedBy)

	// A past claim is never the queue head.
	assert.Nil(t, board.Heads["research"])
}

func TestBuildBoard_QueueHead_CurrentClaim(t *testing.T) {
	today := domain.DateOf(fixedNow)
	dates := []time.Time{today}

	slots := []*domain.Slot{
		{ID: "s1", Date: today, Hour: 9, Queue: "research", Available: false, ClaimedBy: "alice"},
		{ID: "s2", Date: today, Hour: 15, Queue: "research", Available: false, ClaimedBy: "bob"},
	}

	board := BuildBoard(testQueues, dates, slots, nil, fixedNow)

	head := board.Heads["research"]
	require.NotNil(t, head)
	assert.Equal(t, "s1", head.SlotID)
	assert.Equal(t, "alice", head.ClaimedBy)
	assert.True(t, head.Current)
	assert.Equal(t, today.Format(domain.HeadDateLayout), head.Date)
}

func TestBuildBoard_QueueHead_NextFutureClaim(t *testing.T) {
	today := domain.DateOf(fixedNow)
	dates := []time.Time{today, today.AddDate(0, 0, 1)}

	slots := []*domain.Slot{
		{ID: "s0", Date: today, Hour: 6, Queue: "building", Available: false, ClaimedBy: "carol"},
		{ID: "s1", Date: today.AddDate(0, 0, 1), Hour: 11, Queue: "building", Available: false, ClaimedBy: "dave"},
	}

	board := BuildBoard(testQueues, dates, slots, nil, fixedNow)

	// Nothing is running right now, so the head is the next claim ahead.
	head := board.Heads["building"]
	require.NotNil(t, head)
	assert.Equal(t, "s1", head.SlotID)
	assert.Equal(t, "dave", head.ClaimedBy)
	assert.False(t, head.Current)
}

func TestBuildBoard_BonusOverlay(t *testing.T) {
	today := domain.DateOf(fixedNow)
	dates := []time.Time{today}

	bonuses := []*domain.Bonus{
		{ID: "b1", Queue: "research", StartAt: today.Add(14 * time.Hour), DurationHours: 2, Active: true},
	}

	board := BuildBoard(testQueues, dates, nil, bonuses, fixedNow)

	views := board.Days[0].Queues["research"]
	assert.True(t, views[14].Bonus)
	assert.True(t, views[15].Bonus)
	assert.False(t, views[16].Bonus)

	// The overlay never touches availability.
	assert.True(t, views[14].Available)

	// Other queues are unaffected.
	assert.False(t, board.Days[0].Queues["building"][14].Bonus)
}

func TestBoardService_Board(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bonusRepo := mocks.NewMockBonusRepo(t)
	log := newTestLogger(t)

	window := NewWindowService(slotRepo, log, testQueues, 2)
	window.now = func() time.Time { return fixedNow }

	svc := NewBoardService(slotRepo, bonusRepo, window, log, testQueues)
	svc.now = func() time.Time { return fixedNow }

	today := domain.DateOf(fixedNow)
	tomorrow := today.AddDate(0, 0, 1)

	slotRepo.EXPECT().DeleteOutside(mock.Anything, today, tomorrow).Return(0, nil)
	slotRepo.EXPECT().EnsureDate(mock.Anything, mock.Anything, testQueues).Return(nil).Times(2)
	slotRepo.EXPECT().List(mock.Anything, today, tomorrow).Return([]*domain.Slot{
		{ID: "s1", Date: tomorrow, Hour: 10, Queue: "research", Available: false, ClaimedBy: "alice"},
	}, nil)
	bonusRepo.EXPECT().ActiveAt(mock.Anything, fixedNow).Return(nil, nil)

	board, err := svc.Board(context.Background())

	require.NoError(t, err)
	require.Len(t, board.Days, 2)
	assert.Equal(t, fixedNow, board.GeneratedAt)

	head := board.Heads["research"]
	require.NotNil(t, head)
	assert.Equal(t, "s1", head.SlotID)
}

func TestBoardService_Board_ReconcileError(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	bonusRepo := mocks.NewMockBonusRepo(t)
	log := newTestLogger(t)

	window := NewWindowService(slotRepo, log, testQueues, 2)
	window.now = func() time.Time { return fixedNow }

	svc := NewBoardService(slotRepo, bonusRepo, window, log, testQueues)
	svc.now = func() time.Time { return fixedNow }

	slotRepo.EXPECT().DeleteOutside(mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), assert.AnError)

	_, err := svc.Board(context.Background())

	require.Error(t, err)
}
