package domain

import "time"

// SlotView is one rendered cell of the board. Availability here is a display
// value: an expired unclaimed slot is shown as held by PastHolder without
// the store ever being touched.
type SlotView struct {
	ID        string `json:"id,omitempty"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	ClaimedBy string `json:"claimed_by,omitempty"`
	Past      bool   `json:"past"`
	Current   bool   `json:"current"`
	Bonus     bool   `json:"bonus"`
}

// QueueHead is the claim a queue is currently serving, or the next one
// coming up.
type QueueHead struct {
	SlotID    string `json:"slot_id"`
	Date      string `json:"date"` // DD/MM/YYYY
	Time      string `json:"time"`
	ClaimedBy string `json:"claimed_by"`
	Current   bool   `json:"current"`
}

// BoardDay holds the 24 slot views of every queue for one date.
type BoardDay struct {
	Date   string                `json:"date"`
	Queues map[string][]SlotView `json:"queues"`
}

// Board is the full display state: the rolling window of days plus the head
// of each queue (nil head means no active shift).
type Board struct {
	Queues      []string              `json:"queues"`
	Days        []BoardDay            `json:"days"`
	Heads       map[string]*QueueHead `json:"heads"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// HeadDateLayout is the friendly date format used for queue heads.
const HeadDateLayout = "02/01/2006"
