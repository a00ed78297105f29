package domain

import "time"

// Bonus marks a time range of one queue as having special status. It is
// display metadata only and never changes slot availability.
type Bonus struct {
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	StartAt       time.Time `json:"start_at"`
	DurationHours int       `json:"duration_hours"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b *Bonus) EndsAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationHours) * time.Hour)
}

// RunningAt reports whether the bonus range covers the instant t.
func (b *Bonus) RunningAt(t time.Time) bool {
	return !t.Before(b.StartAt) && t.Before(b.EndsAt())
}

type CreateBonusInput struct {
	Queue         string
	StartAt       time.Time
	DurationHours int
}
