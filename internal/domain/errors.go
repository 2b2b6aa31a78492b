package domain

import "errors"

var (
	ErrTourNotFound   = errors.New("tour not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrTourInactive     = errors.New("tour is not active")
	ErrTicketCancelled  = errors.New("ticket is cancelled")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a write that lost a serialization race after the
	// bounded retry budget was spent. Safe to retry the same call.
	ErrConflict = errors.New("conflicting concurrent update, retry")
)
