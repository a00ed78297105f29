package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BoardSvc interface {
	Board(ctx context.Context) (*domain.Board, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Slot, error)
	Cancel(ctx context.Context, slotID, claimant string) (*domain.Slot, error)
}

type BonusSvc interface {
	Create(ctx context.Context, input domain.CreateBonusInput) (*domain.Bonus, error)
	List(ctx context.Context) ([]*domain.Bonus, error)
	Toggle(ctx context.Context, id string) (*domain.Bonus, error)
	Delete(ctx context.Context, id string) error
}

type ReminderSvc interface {
	Create(ctx context.Context, input domain.CreateWeeklyEventInput) (*domain.WeeklyEvent, error)
	List(ctx context.Context) ([]*domain.WeeklyEvent, error)
	Toggle(ctx context.Context, id string) (*domain.WeeklyEvent, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	boardService       BoardSvc
	reservationService ReservationSvc
	bonusService       BonusSvc
	reminderService    ReminderSvc
}

func NewHandler(boardService BoardSvc, reservationService ReservationSvc, bonusService BonusSvc, reminderService ReminderSvc) *Handler {
	return &Handler{
		boardService:       boardService,
		reservationService: reservationService,
		bonusService:       bonusService,
		reminderService:    reminderService,
	}
}

// Board

func (h *Handler) GetBoard(c *ginext.Context) {
	board, err := h.boardService.Board(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponse(board))
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	hour, err := domain.ParseHour(req.Time)
	if err != nil {
		h.handleError(c, err)
		return
	}

	slot, err := h.reservationService.Reserve(c.Request.Context(), domain.ReserveInput{
		Date:     date,
		Hour:     hour,
		Queue:    req.Queue,
		Claimant: req.ClaimedBy,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.reservationService.Cancel(c.Request.Context(), slotID, req.ClaimedBy)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

// Bonuses

func (h *Handler) CreateBonus(c *ginext.Context) {
	var req dto.CreateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	hour, err := domain.ParseHour(req.StartTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bonus, err := h.bonusService.Create(c.Request.Context(), domain.CreateBonusInput{
		Queue:         req.Queue,
		StartAt:       date.Add(time.Duration(hour) * time.Hour),
		DurationHours: req.DurationHours,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBonusResponse(bonus))
}

func (h *Handler) ListBonuses(c *ginext.Context) {
	bonuses, err := h.bonusService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		resp = append(resp, dto.ToBonusResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ToggleBonus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bonus id"})
		return
	}

	bonus, err := h.bonusService.Toggle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBonusResponse(bonus))
}

func (h *Handler) DeleteBonus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bonus id"})
		return
	}

	if err := h.bonusService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Reminders

func (h *Handler) CreateReminder(c *ginext.Context) {
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var messages [7]string
	copy(messages[:], req.Messages)

	event, err := h.reminderService.Create(c.Request.Context(), domain.CreateWeeklyEventInput{
		Name:      req.Name,
		Messages:  messages,
		StartDate: startDate,
		EndDate:   endDate,
		RemindAt:  req.RemindAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReminderResponse(event))
}

func (h *Handler) ListReminders(c *ginext.Context) {
	events, err := h.reminderService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReminderResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToReminderResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ToggleReminder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reminder id"})
		return
	}

	event, err := h.reminderService.Toggle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderResponse(event))
}

func (h *Handler) DeleteReminder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reminder id"})
		return
	}

	if err := h.reminderService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBonusNotFound),
		errors.Is(err, domain.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrCrossQueueConflict),
		errors.Is(err, domain.ErrSlotPassed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
