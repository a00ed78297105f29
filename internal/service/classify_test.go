package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		past    bool
		current bool
	}{
		{"before start", start.Add(-time.Minute), false, false},
		{"at start", start, false, true},
		{"mid slot", start.Add(30 * time.Minute), false, true},
		{"last instant", start.Add(time.Hour - time.Nanosecond), false, true},
		{"at end", start.Add(time.Hour), true, false},
		{"after end", start.Add(2 * time.Hour), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timing := Classify(start, tt.now)
			assert.Equal(t, tt.past, timing.Past)
			assert.Equal(t, tt.current, timing.Current)
		})
	}
}
