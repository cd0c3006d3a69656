package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound   = errors.New("invalid order id")
	ErrDishNotFound    = errors.New("dish not on the menu")
	ErrDishUnavailable = errors.New("dish is not available")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidPrice    = errors.New("price must be a finite number")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrSnapshotCorrupt = errors.New("snapshot is corrupt")
	ErrUnknownBackend  = errors.New("unknown storage backend")
)

// DishUnavailableError is returned by TakeOrder when a requested dish cannot
// be ordered. Reason is ErrDishNotFound or ErrDishUnavailable.
type DishUnavailableError struct {
	DishID string
	Reason error
}

func (e *DishUnavailableError) Error() string {
	return fmt.Sprintf("dish %s: %v", e.DishID, e.Reason)
}

func (e *DishUnavailableError) Unwrap() error { return e.Reason }
