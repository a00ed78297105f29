package dto

type ReserveRequest struct {
	Date      string `json:"date" binding:"required"`
	Queue     string `json:"queue" binding:"required"`
	Time      string `json:"time" binding:"required"`
	ClaimedBy string `json:"claimed_by" binding:"required"`
}

type CancelRequest struct {
	ClaimedBy string `json:"claimed_by" binding:"required"`
}

type CreateBonusRequest struct {
	Queue         string `json:"queue" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required,gte=1"`
}

type CreateReminderRequest struct {
	Name      string   `json:"name" binding:"required"`
	Messages  []string `json:"messages" binding:"max=7"` // Monday first
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	RemindAt  string   `json:"remind_at" binding:"required"`
}
