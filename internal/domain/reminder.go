package domain

import (
	"fmt"
	"time"
)

// WeeklyEvent is a recurring reminder: one optional message per weekday,
// dispatched once per day at RemindAt while the validity range holds.
type WeeklyEvent struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Messages  [7]string  `json:"messages"` // Monday..Sunday
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	RemindAt  string     `json:"remind_at"` // HH:MM
	LastSent  *time.Time `json:"last_sent,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MessageFor returns the message configured for the weekday of day, which
// may be empty.
func (e *WeeklyEvent) MessageFor(day time.Time) string {
	return e.Messages[weekdayIndex(day)]
}

// CoversDate reports whether day falls inside [StartDate, EndDate].
func (e *WeeklyEvent) CoversDate(day time.Time) bool {
	return !day.Before(e.StartDate) && !day.After(e.EndDate)
}

// RemindTimeOn resolves RemindAt against the given date.
func (e *WeeklyEvent) RemindTimeOn(day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", e.RemindAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid remind_at %q", ErrValidation, e.RemindAt)
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// weekdayIndex maps time.Weekday (Sunday=0) to the Monday-first Messages index.
func weekdayIndex(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

type CreateWeeklyEventInput struct {
	Name      string
	Messages  [7]string
	StartDate time.Time
	EndDate   time.Time
	RemindAt  string
}
