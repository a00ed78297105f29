package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/stretchr/testify/assert"
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

func TestDiscordNotifier_NotifySlotReserved(t *testing.T) {
	var got struct {
		Content string `json:"content"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, newTestLogger(t))

	slot := &domain.Slot{
		Date:      time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Hour:      14,
		Queue:     "research",
		ClaimedBy: "alice",
	}
	n.NotifySlotReserved(context.Background(), slot)

	assert.Contains(t, got.Content, "2025-03-11")
	assert.Contains(t, got.Content, "14:00")
	assert.Contains(t, got.Content, "research")
	assert.Contains(t, got.Content, "alice")
}

func TestDiscordNotifier_NotifyReminder(t *testing.T) {
	var got struct {
		Content string `json:"content"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, newTestLogger(t))

	event := &domain.WeeklyEvent{Name: "standup"}
	n.NotifyReminder(context.Background(), event, "monday standup")

	assert.Contains(t, got.Content, "standup")
	assert.Contains(t, got.Content, "monday standup")
}

func TestDiscordNotifier_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0.01")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, newTestLogger(t))
	n.NotifyReminder(context.Background(), &domain.WeeklyEvent{Name: "standup"}, "msg")

	assert.Equal(t, int32(2), calls.Load())
}

func TestDiscordNotifier_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0.01")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, newTestLogger(t))
	n.NotifyReminder(context.Background(), &domain.WeeklyEvent{Name: "standup"}, "msg")

	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestDiscordNotifier_NoRetryOnOtherErrors(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, newTestLogger(t))
	n.NotifyReminder(context.Background(), &domain.WeeklyEvent{Name: "standup"}, "msg")

	assert.Equal(t, int32(1), calls.Load())
}

func TestDiscordNotifier_DisabledWithoutURL(t *testing.T) {
	n := NewDiscordNotifier("", newTestLogger(t))

	// No webhook configured: a send is a silent no-op.
	n.NotifyReminder(context.Background(), &domain.WeeklyEvent{Name: "standup"}, "msg")
}

func TestDiscordNotifier_SkipsOnCancelledContext(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := NewDiscordNotifier(srv.URL, newTestLogger(t))
	n.NotifyReminder(ctx, &domain.WeeklyEvent{Name: "standup"}, "msg")

	assert.Equal(t, int32(0), calls.Load())
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		body   string
		want   time.Duration
	}{
		{"header seconds", "2", "", 2 * time.Second},
		{"header fractional", "0.5", "", 500 * time.Millisecond},
		{"body field", "", `{"retry_after":1.5}`, 1500 * time.Millisecond},
		{"header wins", "3", `{"retry_after":1}`, 3 * time.Second},
		{"fallback", "", `{}`, defaultRetryDelay},
		{"garbage body", "", `not json`, defaultRetryDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}

			assert.Equal(t, tt.want, retryAfter(resp, []byte(tt.body)))
		})
	}
}
