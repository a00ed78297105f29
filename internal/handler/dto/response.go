package dto

import (
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
)

type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Queue     string `json:"queue"`
	Available bool   `json:"available"`
	ClaimedBy string `json:"claimed_by,omitempty"`
}

type BonusResponse struct {
	ID            string `json:"id"`
	Queue         string `json:"queue"`
	StartAt       string `json:"start_at"`
	EndAt         string `json:"end_at"`
	DurationHours int    `json:"duration_hours"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"created_at"`
}

type ReminderResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Messages  []string `json:"messages"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	RemindAt  string   `json:"remind_at"`
	LastSent  string   `json:"last_sent,omitempty"`
	Active    bool     `json:"active"`
	CreatedAt string   `json:"created_at"`
}

type QueueHeadResponse struct {
	SlotID    string `json:"slot_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	ClaimedBy string `json:"claimed_by"`
	Current   bool   `json:"current"`
}

type BoardDayResponse struct {
	Date   string                       `json:"date"`
	Queues map[string][]domain.SlotView `json:"queues"`
}

type BoardResponse struct {
	Queues      []string                      `json:"queues"`
	Days        []BoardDayResponse            `json:"days"`
	Heads       map[string]*QueueHeadResponse `json:"heads"`
	GeneratedAt string                        `json:"generated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateLayout),
		Time:      domain.FormatHour(s.Hour),
		Queue:     s.Queue,
		Available: s.Available,
		ClaimedBy: s.ClaimedBy,
	}
}

func ToBonusResponse(b *domain.Bonus) BonusResponse {
	return BonusResponse{
		ID:            b.ID,
		Queue:         b.Queue,
		StartAt:       b.StartAt.Format(time.RFC3339),
		EndAt:         b.EndsAt().Format(time.RFC3339),
		DurationHours: b.DurationHours,
		Active:        b.Active,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToReminderResponse(e *domain.WeeklyEvent) ReminderResponse {
	resp := ReminderResponse{
		ID:        e.ID,
		Name:      e.Name,
		Messages:  e.Messages[:],
		StartDate: e.StartDate.Format(domain.DateLayout),
		EndDate:   e.EndDate.Format(domain.DateLayout),
		RemindAt:  e.RemindAt,
		Active:    e.Active,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
	if e.LastSent != nil {
		resp.LastSent = e.LastSent.Format(domain.DateLayout)
	}
	return resp
}

func ToBoardResponse(b *domain.Board) BoardResponse {
	days := make([]BoardDayResponse, 0, len(b.Days))
	for _, d := range b.Days {
		days = append(days, BoardDayResponse{Date: d.Date, Queues: d.Queues})
	}

	heads := make(map[string]*QueueHeadResponse, len(b.Heads))
	for queue, head := range b.Heads {
		if head == nil {
			heads[queue] = nil // no active shift
			continue
		}
		heads[queue] = &QueueHeadResponse{
			SlotID:    head.SlotID,
			Date:      head.Date,
			Time:      head.Time,
			ClaimedBy: head.ClaimedBy,
			Current:   head.Current,
		}
	}

	return BoardResponse{
		Queues:      b.Queues,
		Days:        days,
		Heads:       heads,
		GeneratedAt: b.GeneratedAt.Format(time.RFC3339),
	}
}
