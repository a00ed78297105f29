package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsBothJobs(t *testing.T) {
	window := mocks.NewMockWindowReconciler(t)
	reminders := mocks.NewMockReminderDispatcher(t)
	log := newTestLogger(t)

	s := New(window, reminders, 50*time.Millisecond, log)

	window.EXPECT().Reconcile(mock.Anything).Return(nil)
	reminders.EXPECT().Tick(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(window.Calls), 1)
	assert.GreaterOrEqual(t, len(reminders.Calls), 1)
}

func TestScheduler_Tick_ReconcileErrorDoesNotBlockReminders(t *testing.T) {
	window := mocks.NewMockWindowReconciler(t)
	reminders := mocks.NewMockReminderDispatcher(t)
	log := newTestLogger(t)

	s := New(window, reminders, 50*time.Millisecond, log)

	window.EXPECT().Reconcile(mock.Anything).Return(errors.New("db error"))
	reminders.EXPECT().Tick(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminders.Calls), 1)
}

func TestScheduler_Tick_HandlesReminderError(t *testing.T) {
	window := mocks.NewMockWindowReconciler(t)
	reminders := mocks.NewMockReminderDispatcher(t)
	log := newTestLogger(t)

	s := New(window, reminders, 50*time.Millisecond, log)

	window.EXPECT().Reconcile(mock.Anything).Return(nil)
	reminders.EXPECT().Tick(mock.Anything).Return(errors.New("webhook down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(window.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	window := mocks.NewMockWindowReconciler(t)
	reminders := mocks.NewMockReminderDispatcher(t)
	log := newTestLogger(t)

	s := New(window, reminders, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	window := mocks.NewMockWindowReconciler(t)
	reminders := mocks.NewMockReminderDispatcher(t)
	log := newTestLogger(t)

	s := New(window, reminders, 30*time.Millisecond, log)

	window.EXPECT().Reconcile(mock.Anything).Return(nil).Times(3)
	reminders.EXPECT().Tick(mock.Anything).Return(nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(window.Calls), 3)
}
