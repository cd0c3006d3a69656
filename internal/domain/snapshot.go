package domain

import "fmt"

// Snapshot is the complete persisted state of an ordering service.
// OrderCounter is the next order ID to hand out.
type Snapshot struct {
	Menu         map[string]Dish `json:"menu"`
	Orders       map[int]Order   `json:"orders"`
	OrderCounter int             `json:"order_counter"`
}

// NewSnapshot returns an empty snapshot whose first order will be 1.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Menu:         make(map[string]Dish),
		Orders:       make(map[int]Order),
		OrderCounter: 1,
	}
}

// Validate checks the structural invariants a loaded snapshot must satisfy.
func (s *Snapshot) Validate() error {
	if s.OrderCounter < 1 {
		return fmt.Errorf("%w: order_counter %d must be >= 1", ErrSnapshotCorrupt, s.OrderCounter)
	}
	for id, d := range s.Menu {
		if d.ID != id {
			return fmt.Errorf("%w: menu key %q holds dish %q", ErrSnapshotCorrupt, id, d.ID)
		}
		if d.Price < 0 {
			return fmt.Errorf("%w: dish %q has negative price", ErrSnapshotCorrupt, id)
		}
	}
	for id, o := range s.Orders {
		if o.ID != id {
			return fmt.Errorf("%w: orders key %d holds order %d", ErrSnapshotCorrupt, id, o.ID)
		}
		if id < 1 || id >= s.OrderCounter {
			return fmt.Errorf("%w: order %d outside counter range", ErrSnapshotCorrupt, id)
		}
	}
	return nil
}
