package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WeeklyEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWeeklyEventRepo(db *dbpg.DB) *WeeklyEventRepository {
	return &WeeklyEventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, name, messages, start_date, end_date, remind_at, last_sent, active, created_at, updated_at`

func scanWeeklyEvent(row interface{ Scan(...any) error }) (*domain.WeeklyEvent, error) {
	var e domain.WeeklyEvent
	var messagesJSON []byte
	var lastSent sql.NullTime
	if err := row.Scan(
		&e.ID, &e.Name, &messagesJSON, &e.StartDate, &e.EndDate,
		&e.RemindAt, &lastSent, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(messagesJSON, &e.Messages); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	e.StartDate = e.StartDate.UTC()
	e.EndDate = e.EndDate.UTC()
	if lastSent.Valid {
		t := lastSent.Time.UTC()
		e.LastSent = &t
	}
	return &e, nil
}

func (r *WeeklyEventRepository) Create(ctx context.Context, e *domain.WeeklyEvent) error {
	messagesJSON, err := json.Marshal(e.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}

	query := `INSERT INTO weekly_events (id, name, messages, start_date, end_date, remind_at, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, messagesJSON, e.StartDate, e.EndDate, e.RemindAt, e.Active,
	)
	if err != nil {
		return fmt.Errorf("insert weekly event: %w", err)
	}

	return nil
}

func (r *WeeklyEventRepository) GetByID(ctx context.Context, id string) (*domain.WeeklyEvent, error) {
	query := `SELECT ` + eventColumns + `
			  FROM weekly_events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get weekly event: %w", err)
	}

	e, err := scanWeeklyEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, fmt.Errorf("scan weekly event: %w", err)
	}

	return e, nil
}

func (r *WeeklyEventRepository) List(ctx context.Context) ([]*domain.WeeklyEvent, error) {
	query := `SELECT ` + eventColumns + `
			  FROM weekly_events
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list weekly events: %w", err)
	}
	defer rows.Close()

	var res []*domain.WeeklyEvent
	for rows.Next() {
		e, err := scanWeeklyEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weekly event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *WeeklyEventRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE weekly_events SET active = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("update weekly event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("weekly event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *WeeklyEventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM weekly_events WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete weekly event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("weekly event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *WeeklyEventRepository) ListActiveOn(ctx context.Context, day time.Time) ([]*domain.WeeklyEvent, error) {
	query := `SELECT ` + eventColumns + `
			  FROM weekly_events
			  WHERE active = TRUE AND start_date <= $1 AND end_date >= $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, day)
	if err != nil {
		return nil, fmt.Errorf("list active weekly events: %w", err)
	}
	defer rows.Close()

	var res []*domain.WeeklyEvent
	for rows.Next() {
		e, err := scanWeeklyEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weekly event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// MarkSent advances the at-most-once-per-day watermark.
func (r *WeeklyEventRepository) MarkSent(ctx context.Context, id string, day time.Time) error {
	query := `UPDATE weekly_events SET last_sent = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, day)
	if err != nil {
		return fmt.Errorf("mark weekly event sent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("weekly event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}
