package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const slotColumns = `id, slot_date, hour, queue, available, claimed_by, created_at, updated_at`

func scanSlot(row interface{ Scan(...any) error }) (*domain.Slot, error) {
	var s domain.Slot
	var claimedBy sql.NullString
	if err := row.Scan(
		&s.ID, &s.Date, &s.Hour, &s.Queue,
		&s.Available, &claimedBy, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Date = s.Date.UTC()
	s.ClaimedBy = claimedBy.String
	return &s, nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return s, nil
}

func (r *SlotRepository) Get(ctx context.Context, date time.Time, hour int, queue string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE slot_date = $1 AND hour = $2 AND queue = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, date, hour, queue)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return s, nil
}

func (r *SlotRepository) List(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE slot_date BETWEEN $1 AND $2
			  ORDER BY slot_date, queue, hour`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// EnsureDate inserts the full queue x hour grid for one date. Rows that
// already exist are left untouched; the unique constraint on
// (slot_date, hour, queue) makes concurrent calls safe.
func (r *SlotRepository) EnsureDate(ctx context.Context, date time.Time, queues []string) error {
	query := `INSERT INTO slots (id, slot_date, hour, queue, available, created_at, updated_at)
			  SELECT gen_random_uuid(), $1, h, q, TRUE, now(), now()
			  FROM generate_series(0, 23) AS h, unnest($2::text[]) AS q
			  ON CONFLICT (slot_date, hour, queue) DO NOTHING`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, date, pq.Array(queues))
	if err != nil {
		return fmt.Errorf("ensure date slots: %w", err)
	}

	return nil
}

// DeleteOutside removes every slot whose date lies outside [from, to].
func (r *SlotRepository) DeleteOutside(ctx context.Context, from, to time.Time) (int64, error) {
	query := `DELETE FROM slots WHERE slot_date < $1 OR slot_date > $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return 0, fmt.Errorf("delete slots outside window: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("slot rows affected: %w", err)
	}

	return rows, nil
}

// ClaimedAt returns the actively claimed slots of every queue at one
// date+hour.
func (r *SlotRepository) ClaimedAt(ctx context.Context, date time.Time, hour int) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE slot_date = $1 AND hour = $2 AND available = FALSE AND claimed_by IS NOT NULL`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, hour)
	if err != nil {
		return nil, fmt.Errorf("list claims at hour: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// Claim flips an available slot to claimed in a single conditional update.
// Of two concurrent claims exactly one sees available = TRUE; the other gets
// ErrSlotTaken.
func (r *SlotRepository) Claim(ctx context.Context, date time.Time, hour int, queue, claimant string) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE slots
			  SET available = FALSE, claimed_by = $4, updated_at = now()
			  WHERE slot_date = $1 AND hour = $2 AND queue = $3 AND available = TRUE`
	res, err := tx.ExecContext(ctx, query, date, hour, queue, claimant)
	if err != nil {
		return nil, fmt.Errorf("claim slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM slots WHERE slot_date = $1 AND hour = $2 AND queue = $3)`
		if err := tx.QueryRowContext(ctx, checkQuery, date, hour, queue).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check slot: %w", err)
		}
		if !exists {
			return nil, domain.ErrSlotNotFound
		}
		return nil, domain.ErrSlotTaken
	}

	row := tx.QueryRowContext(ctx, `SELECT `+slotColumns+`
		FROM slots
		WHERE slot_date = $1 AND hour = $2 AND queue = $3`, date, hour, queue)
	s, err := scanSlot(row)
	if err != nil {
		return nil, fmt.Errorf("scan claimed slot: %w", err)
	}

	return s, tx.Commit()
}

// Release resets a claimed slot back to available, conditionally on the
// caller being the claimant.
func (r *SlotRepository) Release(ctx context.Context, id, claimant string) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	prevRow := tx.QueryRowContext(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)
	prev, err := scanSlot(prevRow)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	query := `UPDATE slots
			  SET available = TRUE, claimed_by = NULL, updated_at = now()
			  WHERE id = $1 AND available = FALSE AND claimed_by = $2`
	res, err := tx.ExecContext(ctx, query, id, claimant)
	if err != nil {
		return nil, fmt.Errorf("release slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		if prev.Available || prev.ClaimedBy == "" {
			return nil, domain.ErrSlotNotFound
		}
		return nil, domain.ErrNotOwner
	}

	return prev, tx.Commit()
}
