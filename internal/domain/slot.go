package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	// HoursPerDay is the number of slots a queue has on one date.
	HoursPerDay = 24
)

// PastHolder is shown as the holder of an expired slot that nobody claimed.
// It is derived at render time and must never be written to the store.
const PastHolder = "expired"

// Slot is one claimable hour of a queue on a given date.
type Slot struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"` // UTC midnight
	Hour      int       `json:"hour"`
	Queue     string    `json:"queue"`
	Available bool      `json:"available"`
	ClaimedBy string    `json:"claimed_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StartsAt returns the instant the slot begins.
func (s *Slot) StartsAt() time.Time {
	return s.Date.Add(time.Duration(s.Hour) * time.Hour)
}

// EndsAt returns the instant the slot ends; a slot covers [StartsAt, EndsAt).
func (s *Slot) EndsAt() time.Time {
	return s.StartsAt().Add(time.Hour)
}

type ReserveInput struct {
	Date     time.Time
	Hour     int
	Queue    string
	Claimant string
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// ParseHour accepts a slot time of day in "HH:00" form.
func ParseHour(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:00", ErrValidation, s)
	}
	if t.Minute() != 0 {
		return 0, fmt.Errorf("%w: time %q is not on an hour boundary", ErrValidation, s)
	}
	return t.Hour(), nil
}

func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
