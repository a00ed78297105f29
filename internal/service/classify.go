package service

import "time"

// Timing is the time-relative state of a slot covering [start, start+1h).
type Timing struct {
	Past    bool
	Current bool
}

// Classify derives the slot state at the instant now. A slot whose end
// boundary has been reached counts as past, so at any instant exactly one
// hour per queue is current.
func Classify(start, now time.Time) Timing {
	end := start.Add(time.Hour)
	return Timing{
		Past:    !now.Before(end),
		Current: !now.Before(start) && now.Before(end),
	}
}
