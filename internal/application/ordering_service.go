package application

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/zestyzomato/zesty/internal/domain"
)

// OrderingService owns the menu and the orders and enforces their invariants:
// removing a dish strips it from every order, and order IDs are never reused.
// It is not safe for concurrent use.
type OrderingService struct {
	menu    map[string]domain.Dish
	orders  map[int]domain.Order
	counter int

	strict bool
	log    zerolog.Logger
}

// Option configures an OrderingService.
type Option func(*OrderingService)

// WithLogger sets the logger used for mutation traces.
func WithLogger(l zerolog.Logger) Option {
	return func(s *OrderingService) { s.log = l }
}

// WithStrictStatuses restricts UpdateOrderStatus to domain.KnownStatuses.
func WithStrictStatuses(strict bool) Option {
	return func(s *OrderingService) { s.strict = strict }
}

func NewOrderingService(opts ...Option) *OrderingService {
	s := &OrderingService{
		menu:    make(map[string]domain.Dish),
		orders:  make(map[int]domain.Order),
		counter: 1,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddDish inserts the dish or overwrites the one already stored under id.
// NaN and infinite prices are rejected with domain.ErrInvalidPrice.
func (s *OrderingService) AddDish(id, name string, price float64, available bool) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("dish %s: %w", id, domain.ErrInvalidPrice)
	}
	if price < 0 {
		return fmt.Errorf("dish %s: %w", id, domain.ErrNegativePrice)
	}
	s.menu[id] = domain.Dish{ID: id, Name: name, Price: price, Available: available}
	s.log.Debug().Str("dish_id", id).Float64("price", price).Bool("available", available).Msg("dish upserted")
	return nil
}

// RemoveDish deletes the dish and strips every reference to it from existing
// orders. It reports false, without error, when the dish is unknown.
func (s *OrderingService) RemoveDish(id string) bool {
	if _, ok := s.menu[id]; !ok {
		return false
	}
	delete(s.menu, id)

	stripped := 0
	for oid, o := range s.orders {
		kept := slices.DeleteFunc(o.DishIDs, func(d string) bool { return d == id })
		if n := len(o.DishIDs) - len(kept); n > 0 {
			stripped += n
			o.DishIDs = kept
			s.orders[oid] = o
		}
	}
	s.log.Debug().Str("dish_id", id).Int("references_stripped", stripped).Msg("dish removed")
	return true
}

// UpdateAvailability sets the available flag. It reports false when the dish
// is unknown.
func (s *OrderingService) UpdateAvailability(id string, available bool) bool {
	d, ok := s.menu[id]
	if !ok {
		return false
	}
	d.Available = available
	s.menu[id] = d
	s.log.Debug().Str("dish_id", id).Bool("available", available).Msg("availability updated")
	return true
}

// TakeOrder creates an order when every dish exists and is available.
// The first dish that fails aborts the whole order with a
// *domain.DishUnavailableError; nothing is created in that case.
func (s *OrderingService) TakeOrder(customer string, dishIDs []string) (domain.Order, error) {
	for _, id := range dishIDs {
		d, ok := s.menu[id]
		if !ok {
			return domain.Order{}, &domain.DishUnavailableError{DishID: id, Reason: domain.ErrDishNotFound}
		}
		if !d.Available {
			return domain.Order{}, &domain.DishUnavailableError{DishID: id, Reason: domain.ErrDishUnavailable}
		}
	}

	o := domain.Order{
		ID:           s.counter,
		CustomerName: customer,
		DishIDs:      slices.Clone(dishIDs),
		Status:       domain.StatusReceived,
	}
	if o.DishIDs == nil {
		o.DishIDs = []string{}
	}
	s.orders[o.ID] = o
	s.counter++

	s.log.Debug().Int("order_id", o.ID).Str("customer", customer).Int("items", len(dishIDs)).Msg("order taken")
	return o.Clone(), nil
}

// UpdateOrderStatus overwrites the order's status. Any label is accepted
// unless the service was built WithStrictStatuses.
func (s *OrderingService) UpdateOrderStatus(orderID int, status string) error {
	o, ok := s.orders[orderID]
	if !ok {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
	}
	if s.strict && !domain.IsKnownStatus(status) {
		return fmt.Errorf("%w %q", domain.ErrUnknownStatus, status)
	}
	prev := o.Status
	o.Status = status
	s.orders[orderID] = o
	s.log.Debug().Int("order_id", orderID).Str("from", prev).Str("to", status).Msg("order status updated")
	return nil
}

// ReviewOrders yields the orders passing filter in ascending ID order.
// The sequence reads live state; do not mutate the service while ranging.
func (s *OrderingService) ReviewOrders(filter domain.OrderFilter) iter.Seq[domain.Order] {
	return func(yield func(domain.Order) bool) {
		for _, id := range slices.Sorted(maps.Keys(s.orders)) {
			o := s.orders[id]
			if !filter.Match(o) {
				continue
			}
			if !yield(o.Clone()) {
				return
			}
		}
	}
}

// CalculateOrderTotal sums the current menu price of each dish on the order.
// Prices are not captured at order time, so the total follows menu edits.
func (s *OrderingService) CalculateOrderTotal(orderID int) (float64, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return 0, fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
	}
	var total float64
	for _, id := range o.DishIDs {
		if d, ok := s.menu[id]; ok {
			total += d.Price
		}
	}
	return total, nil
}

// Order returns a copy of a single order.
func (s *OrderingService) Order(orderID int) (domain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return domain.Order{}, fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
	}
	return o.Clone(), nil
}

// Menu returns every dish sorted by ID.
func (s *OrderingService) Menu() []domain.Dish {
	dishes := make([]domain.Dish, 0, len(s.menu))
	for _, id := range slices.Sorted(maps.Keys(s.menu)) {
		dishes = append(dishes, s.menu[id])
	}
	return dishes
}

// OrderCount returns the number of stored orders.
func (s *OrderingService) OrderCount() int { return len(s.orders) }

// NextOrderID returns the ID the next successful TakeOrder will assign.
func (s *OrderingService) NextOrderID() int { return s.counter }

// Snapshot returns a deep copy of the current state.
func (s *OrderingService) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Menu:         maps.Clone(s.menu),
		Orders:       make(map[int]domain.Order, len(s.orders)),
		OrderCounter: s.counter,
	}
	if snap.Menu == nil {
		snap.Menu = make(map[string]domain.Dish)
	}
	for id, o := range s.orders {
		snap.Orders[id] = o.Clone()
	}
	return snap
}

// Restore replaces all state with a copy of snap after validating it.
// On error the current state is left untouched.
func (s *OrderingService) Restore(snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: no snapshot", domain.ErrSnapshotCorrupt)
	}
	if err := snap.Validate(); err != nil {
		return err
	}
	menu := make(map[string]domain.Dish, len(snap.Menu))
	maps.Copy(menu, snap.Menu)
	orders := make(map[int]domain.Order, len(snap.Orders))
	for id, o := range snap.Orders {
		orders[id] = o.Clone()
	}

	s.menu, s.orders, s.counter = menu, orders, snap.OrderCounter
	return nil
}

// Load replaces the state with what store holds. A store with nothing saved
// leaves the state untouched; a corrupt one returns an error wrapping
// domain.ErrSnapshotCorrupt and also leaves the state untouched.
func (s *OrderingService) Load(store domain.SnapshotStore) error {
	snap, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if snap == nil {
		s.log.Debug().Msg("no saved state, starting empty")
		return nil
	}
	if err := s.Restore(snap); err != nil {
		if !errors.Is(err, domain.ErrSnapshotCorrupt) {
			err = fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
		}
		return fmt.Errorf("loading snapshot: %w", err)
	}
	s.log.Debug().Int("dishes", len(s.menu)).Int("orders", len(s.orders)).Msg("state loaded")
	return nil
}

// Save writes the full state to store, replacing whatever it held.
func (s *OrderingService) Save(store domain.SnapshotStore) error {
	if err := store.Save(s.Snapshot()); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	s.log.Debug().Int("dishes", len(s.menu)).Int("orders", len(s.orders)).Msg("state saved")
	return nil
}
