package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// These tests run the ledger against a real Postgres because the capacity
// guarantee lives in its locking, not in Go code. Set INTEGRATION_TEST=true
// (and TEST_POSTGRES_* to point at the instance) to enable them.

func skipIfNoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newTestDB(t *testing.T) *dbpg.DB {
	skipIfNoIntegration(t)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		envOr("TEST_POSTGRES_HOST", "localhost"),
		envOr("TEST_POSTGRES_PORT", "5432"),
		envOr("TEST_POSTGRES_USER", "postgres"),
		envOr("TEST_POSTGRES_PASSWORD", "postgres"),
		envOr("TEST_POSTGRES_DB", "colombiatour_test"),
	)

	db, err := dbpg.New(dsn, nil, &dbpg.Options{})
	require.NoError(t, err)
	require.NoError(t, db.Master.PingContext(context.Background()))
	require.NoError(t, goose.Up(db.Master, "../../migrations"))

	t.Cleanup(func() { db.Master.Close() })
	return db
}

func seedUser(t *testing.T, db *dbpg.DB) string {
	id := uuid.New().String()
	_, err := db.Master.Exec(
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		id, "Ana", id+"@example.com",
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Master.Exec(`DELETE FROM tickets WHERE user_id = $1`, id)
		db.Master.Exec(`DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

func seedTour(t *testing.T, db *dbpg.DB, capacity int, price int64, active bool) string {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Master.Exec(
		`INSERT INTO tours (id, destination, description, price, capacity, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		id, "Cartagena", "Ciudad amurallada", price, capacity, active, now,
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Master.Exec(`DELETE FROM tickets WHERE tour_id = $1`, id)
		db.Master.Exec(`DELETE FROM tours WHERE id = $1`, id)
	})
	return id
}

func newTicket(tourID, userID string, quantity int) *domain.Ticket {
	now := time.Now().UTC()
	return &domain.Ticket{
		ID:          uuid.New().String(),
		TourID:      tourID,
		UserID:      userID,
		Quantity:    quantity,
		PurchasedAt: now,
		UpdatedAt:   now,
	}
}

// remaining recomputes the tour's free capacity the same way the catalog
// listing does, straight from committed rows.
func remaining(t *testing.T, db *dbpg.DB, tourID string) int {
	var free int
	err := db.Master.QueryRow(
		`SELECT t.capacity - COALESCE(SUM(tk.quantity) FILTER (WHERE tk.status = $2), 0)
		 FROM tours t
		 LEFT JOIN tickets tk ON tk.tour_id = t.id
		 WHERE t.id = $1
		 GROUP BY t.capacity`,
		tourID, domain.TicketStatusCommitted,
	).Scan(&free)
	require.NoError(t, err)
	return free
}

func TestTicketRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 10, 100000, true)
	userID := seedUser(t, db)

	ticket := newTicket(tourID, userID, 4)
	require.NoError(t, repo.Create(ctx, ticket))
	assert.Equal(t, int64(400000), ticket.Total)
	assert.Equal(t, domain.TicketStatusCommitted, ticket.Status)
	assert.Equal(t, 6, remaining(t, db, tourID))

	// Growing by the delta that still fits.
	updated, err := repo.UpdateQuantity(ctx, ticket.ID, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)
	assert.Equal(t, int64(600000), updated.Total)
	assert.Equal(t, 4, remaining(t, db, tourID))

	// Growing past capacity leaves the ticket untouched.
	_, err = repo.UpdateQuantity(ctx, ticket.ID, 20)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	stored, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Quantity)
	assert.Equal(t, int64(600000), stored.Total)
	assert.Equal(t, 4, remaining(t, db, tourID))

	require.NoError(t, repo.Cancel(ctx, ticket.ID))
	assert.Equal(t, 10, remaining(t, db, tourID))
}

func TestTicketRepository_Create_RejectsWhenFull(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 5, 100000, true)
	userID := seedUser(t, db)

	require.NoError(t, repo.Create(ctx, newTicket(tourID, userID, 3)))

	err := repo.Create(ctx, newTicket(tourID, userID, 3))
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 2, remaining(t, db, tourID))

	tickets, err := repo.ListByTour(ctx, tourID)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestTicketRepository_Create_TourNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)

	userID := seedUser(t, db)

	err := repo.Create(context.Background(), newTicket(uuid.New().String(), userID, 1))
	require.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestTicketRepository_Create_InactiveTour(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 10, 100000, false)
	userID := seedUser(t, db)

	err := repo.Create(ctx, newTicket(tourID, userID, 1))
	require.ErrorIs(t, err, domain.ErrTourInactive)
	assert.Equal(t, 10, remaining(t, db, tourID))
}

func TestTicketRepository_ConcurrentCreates_AdmitExactlyOne(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 5, 100000, true)
	userID := seedUser(t, db)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, newTicket(tourID, userID, 3))
		}(i)
	}
	wg.Wait()

	var admitted, rejected int
	for _, err := range errs {
		if err == nil {
			admitted++
			continue
		}
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
		rejected++
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 2, remaining(t, db, tourID))

	oversold, err := repo.FindOversold(ctx)
	require.NoError(t, err)
	assert.Empty(t, oversold)
}

func TestTicketRepository_UpdateQuantity_SameValueKeepsTotal(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 10, 250000, true)
	userID := seedUser(t, db)

	ticket := newTicket(tourID, userID, 4)
	require.NoError(t, repo.Create(ctx, ticket))

	updated, err := repo.UpdateQuantity(ctx, ticket.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, ticket.Total, updated.Total)
	assert.Equal(t, 6, remaining(t, db, tourID))
}

func TestTicketRepository_UpdateQuantity_RepricesAgainstStoredPrice(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 10, 100000, true)
	userID := seedUser(t, db)

	ticket := newTicket(tourID, userID, 2)
	require.NoError(t, repo.Create(ctx, ticket))
	require.Equal(t, int64(200000), ticket.Total)

	_, err := db.Master.Exec(`UPDATE tours SET price = $2 WHERE id = $1`, tourID, int64(150000))
	require.NoError(t, err)

	updated, err := repo.UpdateQuantity(ctx, ticket.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), updated.Total)
}

func TestTicketRepository_UpdateQuantity_Cancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 10, 100000, true)
	userID := seedUser(t, db)

	ticket := newTicket(tourID, userID, 2)
	require.NoError(t, repo.Create(ctx, ticket))
	require.NoError(t, repo.Cancel(ctx, ticket.ID))

	_, err := repo.UpdateQuantity(ctx, ticket.ID, 3)
	require.ErrorIs(t, err, domain.ErrTicketCancelled)
}

func TestTicketRepository_Cancel_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 10, 100000, true)
	userID := seedUser(t, db)

	ticket := newTicket(tourID, userID, 4)
	require.NoError(t, repo.Create(ctx, ticket))

	require.NoError(t, repo.Cancel(ctx, ticket.ID))
	require.NoError(t, repo.Cancel(ctx, ticket.ID))

	stored, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusCancelled, stored.Status)
	assert.Equal(t, 10, remaining(t, db, tourID))
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketRepository_FindOversold_ReportsOutOfBandWrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	tourID := seedTour(t, db, 5, 100000, true)
	userID := seedUser(t, db)

	ticket := newTicket(tourID, userID, 5)
	require.NoError(t, repo.Create(ctx, ticket))

	// Bypass the ledger the way a stray manual UPDATE would.
	_, err := db.Master.Exec(`UPDATE tickets SET quantity = 9 WHERE id = $1`, ticket.ID)
	require.NoError(t, err)

	oversold, err := repo.FindOversold(ctx)
	require.NoError(t, err)
	require.Len(t, oversold, 1)
	assert.Equal(t, tourID, oversold[0].TourID)
	assert.Equal(t, 5, oversold[0].Capacity)
	assert.Equal(t, 9, oversold[0].Committed)
}
