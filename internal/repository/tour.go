package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TourRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTourRepo(db *dbpg.DB) *TourRepository {
	return &TourRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	query := `INSERT INTO tours (id, destination, description, price, capacity, active, tour_date, image_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Destination, t.Description, t.Price, t.Capacity,
		t.Active, t.TourDate, t.ImageURL, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}

	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT id, destination, description, price, capacity, active, tour_date, image_url, created_at, updated_at
			  FROM tours
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}

	t, err := scanTour(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("scan tour: %w", err)
	}

	return t, nil
}

// Update applies a partial, last-writer-wins update to non-capacity-critical
// fields. Nil inputs keep the stored value. The capacity column itself can be
// changed here by an administrator; in-flight reservations are unaffected
// because every admission re-reads capacity under the tour lock.
func (r *TourRepository) Update(ctx context.Context, id string, in domain.UpdateTourInput) (*domain.Tour, error) {
	query := `UPDATE tours
			  SET destination = COALESCE($2, destination),
				  description = COALESCE($3, description),
				  price       = COALESCE($4, price),
				  capacity    = COALESCE($5, capacity),
				  tour_date   = COALESCE($6, tour_date),
				  image_url   = COALESCE($7, image_url),
				  updated_at  = now()
			  WHERE id = $1
			  RETURNING id, destination, description, price, capacity, active, tour_date, image_url, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, in.Destination, in.Description, in.Price, in.Capacity, in.TourDate, in.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	t, err := scanTour(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("scan tour: %w", err)
	}

	return t, nil
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tour rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTourNotFound
	}

	return nil
}

func (r *TourRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE tours SET active = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("set tour active: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set active rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTourNotFound
	}

	return nil
}

// List returns a catalog page with remaining capacity derived per row, plus
// the unpaginated match count.
func (r *TourRepository) List(ctx context.Context, f domain.TourFilter) ([]*domain.TourWithRemaining, int64, error) {
	query := `SELECT t.id, t.destination, t.description, t.price, t.capacity, t.active, t.tour_date, t.image_url, t.created_at, t.updated_at,
					 t.capacity - COALESCE(SUM(tk.quantity) FILTER (WHERE tk.status = $4), 0) AS remaining,
					 COUNT(*) OVER () AS total
			  FROM tours t
			  LEFT JOIN tickets tk ON tk.tour_id = t.id
			  WHERE $1::boolean IS NULL OR t.active = $1
			  GROUP BY t.id
			  ORDER BY t.created_at DESC
			  OFFSET $2 LIMIT $3`

	offset := (f.Page - 1) * f.Limit
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		f.Active, offset, f.Limit, domain.TicketStatusCommitted,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var (
		res   []*domain.TourWithRemaining
		total int64
	)
	for rows.Next() {
		var (
			tr       domain.TourWithRemaining
			tourDate sql.NullTime
		)
		if err = rows.Scan(
			&tr.ID, &tr.Destination, &tr.Description, &tr.Price, &tr.Capacity,
			&tr.Active, &tourDate, &tr.ImageURL, &tr.CreatedAt, &tr.UpdatedAt,
			&tr.Remaining, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan tour row: %w", err)
		}
		if tourDate.Valid {
			d := tourDate.Time
			tr.TourDate = &d
		}
		res = append(res, &tr)
	}

	return res, total, rows.Err()
}

func scanTour(scan func(dest ...any) error) (*domain.Tour, error) {
	var (
		t        domain.Tour
		tourDate sql.NullTime
	)
	if err := scan(
		&t.ID, &t.Destination, &t.Description, &t.Price, &t.Capacity,
		&t.Active, &tourDate, &t.ImageURL, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if tourDate.Valid {
		d := tourDate.Time
		t.TourDate = &d
	}

	return &t, nil
}
