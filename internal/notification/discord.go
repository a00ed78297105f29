package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	maxAttempts       = 3
	defaultRetryDelay = time.Second
)

// DiscordNotifier posts messages to a Discord-style webhook. Delivery is
// best effort: rate-limit responses are retried for the interval the server
// asks for, everything else is logged and dropped.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
	logger     logger.Logger
}

func NewDiscordNotifier(webhookURL string, log logger.Logger) *DiscordNotifier {
	if webhookURL == "" {
		log.Warn("discord webhook url is empty, notifications disabled")
	}

	return &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
}

func (n *DiscordNotifier) NotifySlotReserved(ctx context.Context, slot *domain.Slot) {
	text := fmt.Sprintf("**Slot reserved** — %s %s [%s] by %s",
		slot.Date.Format(domain.DateLayout),
		domain.FormatHour(slot.Hour),
		slot.Queue,
		slot.ClaimedBy,
	)
	n.send(ctx, text)
}

func (n *DiscordNotifier) NotifySlotCancelled(ctx context.Context, slot *domain.Slot) {
	text := fmt.Sprintf("**Reservation cancelled** — %s %s [%s] was held by %s",
		slot.Date.Format(domain.DateLayout),
		domain.FormatHour(slot.Hour),
		slot.Queue,
		slot.ClaimedBy,
	)
	n.send(ctx, text)
}

func (n *DiscordNotifier) NotifyReminder(ctx context.Context, event *domain.WeeklyEvent, message string) {
	n.send(ctx, fmt.Sprintf("**%s**\n%s", event.Name, message))
}

func (n *DiscordNotifier) send(ctx context.Context, content string) {
	if n.webhookURL == "" {
		n.logger.Debug("notification skipped (webhook disabled)", logger.String("content", content))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		n.logger.Error("failed to encode webhook payload",
			logger.String("error", err.Error()),
		)
		return
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
		if err != nil {
			n.logger.Error("failed to build webhook request",
				logger.String("error", err.Error()),
			)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			n.logger.Error("failed to send webhook notification",
				logger.String("error", err.Error()),
			)
			return
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		if resp.StatusCode < http.StatusMultipleChoices {
			return
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxAttempts {
			delay := retryAfter(resp, body)
			n.logger.Warn("webhook rate limited, retrying",
				logger.Duration("delay", delay),
				logger.Int("attempt", attempt),
			)
			select {
			case <-time.After(delay):
				continue
			case <-ctx.Done():
				return
			}
		}

		n.logger.Error("webhook rejected notification",
			logger.Int("status", resp.StatusCode),
		)
		return
	}
}

// retryAfter reads the server-specified rate-limit interval from the
// Retry-After header or the retry_after body field, in seconds.
func retryAfter(resp *http.Response, body []byte) time.Duration {
	if h := resp.Header.Get("Retry-After"); h != "" {
		if secs, err := strconv.ParseFloat(h, 64); err == nil && secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}

	var payload struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.RetryAfter > 0 {
		return time.Duration(payload.RetryAfter * float64(time.Second))
	}

	return defaultRetryDelay
}
