package ports

import (
	"context"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
)

// TicketRepo is the reservation ledger's storage contract. Every mutation is
// atomic with respect to the capacity check on the ticket's tour: it either
// fully applies or leaves no trace.
type TicketRepo interface {
	// Create admits the ticket against the tour's remaining capacity and
	// fills in Total from the price read under the same lock.
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	// UpdateQuantity re-checks capacity with the ticket's own current
	// quantity excluded and recomputes the total at the current price.
	UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.Ticket, error)
	// Cancel is idempotent; cancelling twice is a no-op success.
	Cancel(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.TicketSummary, error)
	ListByTour(ctx context.Context, tourID string) ([]*domain.Ticket, error)
}
