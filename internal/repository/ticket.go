package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/AnaMorales4/BackColombiaTour/internal/pricing"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ledgerOpTimeout bounds how long a single ledger mutation may hold the tour
// row lock. An expired context rolls the transaction back, so no capacity is
// left debited.
const ledgerOpTimeout = 5 * time.Second

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create admits a ticket against the tour's capacity. The tour row lock gives
// per-tour mutual exclusion: the capacity read, the admit/reject decision and
// the insert are one unit relative to any other mutation on the same tour,
// while other tours stay uncontended.
func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var (
			price    int64
			capacity int
			active   bool
		)
		lockQuery := `SELECT price, capacity, active FROM tours WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, lockQuery, t.TourID).Scan(&price, &capacity, &active); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTourNotFound
			}
			return fmt.Errorf("lock tour: %w", err)
		}
		if !active {
			return domain.ErrTourInactive
		}

		committed, err := committedQuantity(ctx, tx, t.TourID, "")
		if err != nil {
			return err
		}
		if committed+t.Quantity > capacity {
			return domain.ErrCapacityExceeded
		}

		t.Total = pricing.Total(price, t.Quantity)
		t.Status = domain.TicketStatusCommitted

		query := `INSERT INTO tickets (id, tour_id, user_id, quantity, total, status, purchased_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err := tx.ExecContext(
			ctx, query, t.ID, t.TourID, t.UserID,
			t.Quantity, t.Total, t.Status, t.PurchasedAt, t.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}

		return nil
	})
}

// UpdateQuantity resizes a committed ticket. The capacity check excludes the
// ticket's own current quantity, so a decrease always succeeds and an
// increase only needs the delta to fit.
func (r *TicketRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		ticketQuery := `SELECT tour_id, user_id, quantity, status, purchased_at
						FROM tickets
						WHERE id = $1
						FOR UPDATE`
		if err := tx.QueryRowContext(ctx, ticketQuery, id).Scan(
			&t.TourID, &t.UserID, &t.Quantity, &t.Status, &t.PurchasedAt,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTicketNotFound
			}
			return fmt.Errorf("lock ticket: %w", err)
		}
		if !t.Live() {
			return domain.ErrTicketCancelled
		}

		var (
			price    int64
			capacity int
		)
		tourQuery := `SELECT price, capacity FROM tours WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, tourQuery, t.TourID).Scan(&price, &capacity); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTourNotFound
			}
			return fmt.Errorf("lock tour: %w", err)
		}

		others, err := committedQuantity(ctx, tx, t.TourID, id)
		if err != nil {
			return err
		}
		if others+quantity > capacity {
			return domain.ErrCapacityExceeded
		}

		t.ID = id
		t.Quantity = quantity
		t.Total = pricing.Total(price, quantity)

		query := `UPDATE tickets
				  SET quantity = $2, total = $3, updated_at = now()
				  WHERE id = $1
				  RETURNING updated_at`
		if err := tx.QueryRowContext(ctx, query, id, t.Quantity, t.Total).Scan(&t.UpdatedAt); err != nil {
			return fmt.Errorf("update ticket: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// Cancel frees the ticket's quantity back to its tour. Cancelling an already
// cancelled ticket is a no-op success.
func (r *TicketRepository) Cancel(ctx context.Context, id string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var (
			tourID string
			status domain.TicketStatus
		)
		ticketQuery := `SELECT tour_id, status FROM tickets WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, ticketQuery, id).Scan(&tourID, &status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTicketNotFound
			}
			return fmt.Errorf("lock ticket: %w", err)
		}
		if status == domain.TicketStatusCancelled {
			return nil
		}

		// Serialize with admissions on the same tour, so a concurrent create
		// never decides on a half-freed quantity.
		var locked string
		tourQuery := `SELECT id FROM tours WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, tourQuery, tourID).Scan(&locked); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lock tour: %w", err)
		}

		query := `UPDATE tickets SET status = $2, updated_at = now() WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, id, domain.TicketStatusCancelled); err != nil {
			return fmt.Errorf("cancel ticket: %w", err)
		}

		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT id, tour_id, user_id, quantity, total, status, purchased_at, updated_at
			  FROM tickets
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(
		&t.ID, &t.TourID, &t.UserID, &t.Quantity,
		&t.Total, &t.Status, &t.PurchasedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TicketSummary, error) {
	query := `SELECT tk.id, tk.tour_id, tk.user_id, tk.quantity, tk.total, tk.status, tk.purchased_at, tk.updated_at,
					 t.id, t.destination, t.description, t.price, t.capacity, t.active, t.tour_date, t.image_url, t.created_at, t.updated_at
			  FROM tickets tk
			  JOIN tours t ON t.id = tk.tour_id
			  WHERE tk.user_id = $1 AND tk.status = $2
			  ORDER BY tk.purchased_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, domain.TicketStatusCommitted)
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketSummary
	for rows.Next() {
		var (
			s        domain.TicketSummary
			tourDate sql.NullTime
		)
		if err = rows.Scan(
			&s.Ticket.ID, &s.Ticket.TourID, &s.Ticket.UserID, &s.Ticket.Quantity,
			&s.Ticket.Total, &s.Ticket.Status, &s.Ticket.PurchasedAt, &s.Ticket.UpdatedAt,
			&s.Tour.ID, &s.Tour.Destination, &s.Tour.Description, &s.Tour.Price,
			&s.Tour.Capacity, &s.Tour.Active, &tourDate, &s.Tour.ImageURL,
			&s.Tour.CreatedAt, &s.Tour.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket summary: %w", err)
		}
		if tourDate.Valid {
			d := tourDate.Time
			s.Tour.TourDate = &d
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *TicketRepository) ListByTour(ctx context.Context, tourID string) ([]*domain.Ticket, error) {
	query := `SELECT id, tour_id, user_id, quantity, total, status, purchased_at, updated_at
			  FROM tickets
			  WHERE tour_id = $1 AND status = $2
			  ORDER BY purchased_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tourID, domain.TicketStatusCommitted)
	if err != nil {
		return nil, fmt.Errorf("list tickets by tour: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(
			&t.ID, &t.TourID, &t.UserID, &t.Quantity,
			&t.Total, &t.Status, &t.PurchasedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

// FindOversold reports tours whose committed quantity exceeds capacity. The
// ledger's locking makes this unreachable through the API; hits mean someone
// wrote to the tables out of band.
func (r *TicketRepository) FindOversold(ctx context.Context) ([]*domain.OversoldTour, error) {
	query := `SELECT t.id, t.capacity, SUM(tk.quantity) AS committed
			  FROM tours t
			  JOIN tickets tk ON tk.tour_id = t.id AND tk.status = $1
			  GROUP BY t.id, t.capacity
			  HAVING SUM(tk.quantity) > t.capacity`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.TicketStatusCommitted)
	if err != nil {
		return nil, fmt.Errorf("find oversold: %w", err)
	}
	defer rows.Close()

	var res []*domain.OversoldTour
	for rows.Next() {
		var o domain.OversoldTour
		if err = rows.Scan(&o.TourID, &o.Capacity, &o.Committed); err != nil {
			return nil, fmt.Errorf("scan oversold: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

// committedQuantity sums live ticket quantities for a tour, optionally
// excluding one ticket (the one being resized). Callers hold the tour lock.
func committedQuantity(ctx context.Context, tx *sql.Tx, tourID, excludeID string) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0)
			  FROM tickets
			  WHERE tour_id = $1 AND status = $2 AND ($3::text = '' OR id::text <> $3::text)`

	var sum int
	if err := tx.QueryRowContext(ctx, query, tourID, domain.TicketStatusCommitted, excludeID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum committed quantity: %w", err)
	}

	return sum, nil
}

// withTx runs fn inside a transaction with a bounded lifetime and retries
// serialization losses a few times before reporting a retryable conflict.
func (r *TicketRepository) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, ledgerOpTimeout)
	defer cancel()

	delay := r.strategy.Delay
	var err error
	for attempt := 1; ; attempt++ {
		err = r.runTx(ctx, fn)
		if err == nil || !retryableTxError(err) || attempt >= r.strategy.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("ledger tx: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * float64(r.strategy.Backoff))
	}
	if err != nil && retryableTxError(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}

	return err
}

func (r *TicketRepository) runTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func retryableTxError(err error) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
