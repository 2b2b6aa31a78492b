package domain

import "time"

// User is the already-resolved identity a ticket belongs to. Authentication
// happens upstream; the ledger only needs the record to exist.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name  string
	Email string
}
