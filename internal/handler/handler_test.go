package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/MEPPERDONAS/185-reservas/internal/handler/dto"
	hmocks "github.com/MEPPERDONAS/185-reservas/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBoardSvc, *hmocks.MockReservationSvc, *hmocks.MockBonusSvc, *hmocks.MockReminderSvc, http.Handler) {
	t.Helper()
	boardSvc := hmocks.NewMockBoardSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	bonusSvc := hmocks.NewMockBonusSvc(t)
	reminderSvc := hmocks.NewMockReminderSvc(t)

	h := NewHandler(boardSvc, reservationSvc, bonusSvc, reminderSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/board", h.GetBoard)
		api.POST("/reservations", h.Reserve)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/bonuses", h.CreateBonus)
		api.GET("/bonuses", h.ListBonuses)
		api.POST("/bonuses/:id/toggle", h.ToggleBonus)
		api.DELETE("/bonuses/:id", h.DeleteBonus)
		api.POST("/reminders", h.CreateReminder)
		api.GET("/reminders", h.ListReminders)
		api.POST("/reminders/:id/toggle", h.ToggleReminder)
		api.DELETE("/reminders/:id", h.DeleteReminder)
	}

	return boardSvc, reservationSvc, bonusSvc, reminderSvc, r
}

// --- Board ---

func TestHandler_GetBoard_Success(t *testing.T) {
	boardSvc, _, _, _, r := setupRouter(t)

	board := &domain.Board{
		Queues: []string{"research", "building"},
		Days: []domain.BoardDay{
			{Date: "2025-03-10", Queues: map[string][]domain.SlotView{}},
		},
		Heads: map[string]*domain.QueueHead{
			"research": {SlotID: "s1", Date: "10/03/2025", Time: "09:00", ClaimedBy: "alice", Current: true},
			"building": nil,
		},
		GeneratedAt: time.Now(),
	}

	boardSvc.EXPECT().Board(mock.Anything).Return(board, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Days, 1)
	require.NotNil(t, resp.Heads["research"])
	assert.Equal(t, "alice", resp.Heads["research"].ClaimedBy)
	assert.Nil(t, resp.Heads["building"])
}

func TestHandler_GetBoard_InternalError(t *testing.T) {
	boardSvc, _, _, _, r := setupRouter(t)

	boardSvc.EXPECT().Board(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Reservations ---

func TestHandler_Reserve_Success(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	slot := &domain.Slot{
		ID:        uuid.New().String(),
		Date:      date,
		Hour:      14,
		Queue:     "research",
		Available: false,
		ClaimedBy: "alice",
	}

	reservationSvc.EXPECT().Reserve(mock.Anything, domain.ReserveInput{
		Date:     date,
		Hour:     14,
		Queue:    "research",
		Claimant: "alice",
	}).Return(slot, nil)

	body, _ := json.Marshal(dto.ReserveRequest{
		Date:      "2025-03-11",
		Queue:     "research",
		Time:      "14:00",
		ClaimedBy: "alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-11", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	assert.Equal(t, "alice", resp.ClaimedBy)
}

func TestHandler_Reserve_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"date":"2025-03-11"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"date":"11.03.2025","queue":"research","time":"14:00","claimed_by":"alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_TimeNotOnHourBoundary(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"date":"2025-03-11","queue":"research","time":"14:30","claimed_by":"alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_SlotTaken(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)

	body, _ := json.Marshal(dto.ReserveRequest{
		Date:      "2025-03-11",
		Queue:     "research",
		Time:      "14:00",
		ClaimedBy: "alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Reserve_CrossQueueConflict(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrCrossQueueConflict)

	body, _ := json.Marshal(dto.ReserveRequest{
		Date:      "2025-03-11",
		Queue:     "research",
		Time:      "14:00",
		ClaimedBy: "alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Reserve_SlotPassed(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotPassed)

	body, _ := json.Marshal(dto.ReserveRequest{
		Date:      "2025-03-10",
		Queue:     "research",
		Time:      "08:00",
		ClaimedBy: "alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	released := &domain.Slot{
		ID:        slotID,
		Date:      time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Hour:      14,
		Queue:     "research",
		Available: false,
		ClaimedBy: "alice",
	}

	reservationSvc.EXPECT().Cancel(mock.Anything, slotID, "alice").Return(released, nil)

	body, _ := json.Marshal(dto.CancelRequest{ClaimedBy: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+slotID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.ClaimedBy)
}

func TestHandler_CancelReservation_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"claimed_by":"alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/not-a-uuid/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelReservation_NotOwner(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, slotID, "bob").Return(nil, domain.ErrNotOwner)

	body, _ := json.Marshal(dto.CancelRequest{ClaimedBy: "bob"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+slotID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelReservation_NotFound(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, slotID, "alice").Return(nil, domain.ErrSlotNotFound)

	body, _ := json.Marshal(dto.CancelRequest{ClaimedBy: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+slotID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bonuses ---

func TestHandler_CreateBonus_Success(t *testing.T) {
	_, _, bonusSvc, _, r := setupRouter(t)

	bonus := &domain.Bonus{
		ID:            uuid.New().String(),
		Queue:         "research",
		StartAt:       time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC),
		DurationHours: 2,
		Active:        true,
		CreatedAt:     time.Now(),
	}

	bonusSvc.EXPECT().Create(mock.Anything, domain.CreateBonusInput{
		Queue:         "research",
		StartAt:       time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC),
		DurationHours: 2,
	}).Return(bonus, nil)

	body, _ := json.Marshal(dto.CreateBonusRequest{
		Queue:         "research",
		StartDate:     "2025-03-11",
		StartTime:     "14:00",
		DurationHours: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bonuses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BonusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "research", resp.Queue)
	assert.Equal(t, 2, resp.DurationHours)
}

func TestHandler_CreateBonus_BadDuration(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"queue":"research","start_date":"2025-03-11","start_time":"14:00","duration_hours":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bonuses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBonus_UnknownQueue(t *testing.T) {
	_, _, bonusSvc, _, r := setupRouter(t)

	bonusSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateBonusRequest{
		Queue:         "catering",
		StartDate:     "2025-03-11",
		StartTime:     "14:00",
		DurationHours: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bonuses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBonuses_Success(t *testing.T) {
	_, _, bonusSvc, _, r := setupRouter(t)

	bonuses := []*domain.Bonus{
		{ID: "b1", Queue: "research", StartAt: time.Now(), DurationHours: 1, Active: true},
		{ID: "b2", Queue: "building", StartAt: time.Now(), DurationHours: 3, Active: false},
	}
	bonusSvc.EXPECT().List(mock.Anything).Return(bonuses, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bonuses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BonusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ToggleBonus_Success(t *testing.T) {
	_, _, bonusSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bonusSvc.EXPECT().Toggle(mock.Anything, id).Return(&domain.Bonus{ID: id, Active: false}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bonuses/"+id+"/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BonusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Active)
}

func TestHandler_ToggleBonus_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bonuses/bad-id/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteBonus_Success(t *testing.T) {
	_, _, bonusSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bonusSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bonuses/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteBonus_NotFound(t *testing.T) {
	_, _, bonusSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bonusSvc.EXPECT().Delete(mock.Anything, id).Return(domain.ErrBonusNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bonuses/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reminders ---

func TestHandler_CreateReminder_Success(t *testing.T) {
	_, _, _, reminderSvc, r := setupRouter(t)

	event := &domain.WeeklyEvent{
		ID:        uuid.New().String(),
		Name:      "standup",
		Messages:  [7]string{"monday standup"},
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		RemindAt:  "09:00",
		Active:    true,
	}

	reminderSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateReminderRequest{
		Name:      "standup",
		Messages:  []string{"monday standup"},
		StartDate: "2025-03-03",
		EndDate:   "2025-03-31",
		RemindAt:  "09:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "standup", resp.Name)
	assert.Len(t, resp.Messages, 7)
}

func TestHandler_CreateReminder_BadRemindAt(t *testing.T) {
	_, _, _, reminderSvc, r := setupRouter(t)

	reminderSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateReminderRequest{
		Name:      "standup",
		StartDate: "2025-03-03",
		EndDate:   "2025-03-31",
		RemindAt:  "late",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListReminders_Success(t *testing.T) {
	_, _, _, reminderSvc, r := setupRouter(t)

	events := []*domain.WeeklyEvent{
		{ID: "e1", Name: "standup", RemindAt: "09:00", Active: true},
	}
	reminderSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ToggleReminder_NotFound(t *testing.T) {
	_, _, _, reminderSvc, r := setupRouter(t)

	id := uuid.New().String()
	reminderSvc.EXPECT().Toggle(mock.Anything, id).Return(nil, domain.ErrReminderNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reminders/"+id+"/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteReminder_Success(t *testing.T) {
	_, _, _, reminderSvc, r := setupRouter(t)

	id := uuid.New().String()
	reminderSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reminders/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
