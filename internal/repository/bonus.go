package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MEPPERDONAS/185-reservas/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BonusRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBonusRepo(db *dbpg.DB) *BonusRepository {
	return &BonusRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bonusColumns = `id, queue, start_at, duration_hours, active, created_at, updated_at`

func scanBonus(row interface{ Scan(...any) error }) (*domain.Bonus, error) {
	var b domain.Bonus
	if err := row.Scan(
		&b.ID, &b.Queue, &b.StartAt, &b.DurationHours,
		&b.Active, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.StartAt = b.StartAt.UTC()
	return &b, nil
}

func (r *BonusRepository) Create(ctx context.Context, b *domain.Bonus) error {
	query := `INSERT INTO bonuses (id, queue, start_at, duration_hours, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, now(), now())`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, b.ID, b.Queue, b.StartAt, b.DurationHours, b.Active)
	if err != nil {
		return fmt.Errorf("insert bonus: %w", err)
	}

	return nil
}

func (r *BonusRepository) GetByID(ctx context.Context, id string) (*domain.Bonus, error) {
	query := `SELECT ` + bonusColumns + `
			  FROM bonuses
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get bonus: %w", err)
	}

	b, err := scanBonus(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBonusNotFound
		}
		return nil, fmt.Errorf("scan bonus: %w", err)
	}

	return b, nil
}

func (r *BonusRepository) List(ctx context.Context) ([]*domain.Bonus, error) {
	query := `SELECT ` + bonusColumns + `
			  FROM bonuses
			  ORDER BY start_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bonuses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Bonus
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bonus: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BonusRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE bonuses SET active = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("update bonus: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bonus rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBonusNotFound
	}

	return nil
}

func (r *BonusRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bonuses WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete bonus: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bonus rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBonusNotFound
	}

	return nil
}

// ActiveAt returns enabled bonuses whose range covers the instant.
// Inactive or past-ended bonuses are excluded here, never deleted.
func (r *BonusRepository) ActiveAt(ctx context.Context, at time.Time) ([]*domain.Bonus, error) {
	query := `SELECT ` + bonusColumns + `
			  FROM bonuses
			  WHERE active = TRUE
			    AND start_at <= $1
			    AND start_at + make_interval(hours => duration_hours) > $1
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, at)
	if err != nil {
		return nil, fmt.Errorf("list active bonuses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Bonus
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bonus: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
