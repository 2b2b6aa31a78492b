package domain

import "time"

type TicketStatus string

const (
	// TicketStatusCommitted is the state a ticket is created in: its quantity
	// counts against the tour's capacity. The admission check happens inside
	// the same transaction that inserts the row, so a half-admitted ticket is
	// never observable.
	TicketStatusCommitted TicketStatus = "committed"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID          string       `json:"id"`
	TourID      string       `json:"tour_id"`
	UserID      string       `json:"user_id"`
	Quantity    int          `json:"quantity"`
	Total       int64        `json:"total"`
	Status      TicketStatus `json:"status"`
	PurchasedAt time.Time    `json:"purchased_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Live reports whether the ticket still holds capacity on its tour.
func (t *Ticket) Live() bool {
	return t.Status == TicketStatusCommitted
}

// TicketSummary is the read-side projection served to a user: the ticket plus
// a snapshot of its tour as of the read.
type TicketSummary struct {
	Ticket
	Tour Tour `json:"tour"`
}

// OversoldTour is reported by the capacity auditor when a tour's committed
// quantity exceeds its capacity. Under the ledger's locking discipline this
// should never happen; any hit points at out-of-band writes.
type OversoldTour struct {
	TourID    string
	Capacity  int
	Committed int
}
