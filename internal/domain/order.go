package domain

import "strings"

// StatusReceived is the status every new order starts with.
const StatusReceived = "received"

// KnownStatuses lists the labels accepted when strict statuses are enabled.
// Without strict mode any string is a valid status.
var KnownStatuses = []string{
	StatusReceived,
	"preparing",
	"ready",
	"served",
	"delivered",
	"cancelled",
}

// Order is one customer's order. DishIDs may repeat.
type Order struct {
	ID           int      `json:"order_id"`
	CustomerName string   `json:"customer_name"`
	DishIDs      []string `json:"dish_ids"`
	Status       string   `json:"status"`
}

// IsKnownStatus reports whether s is one of KnownStatuses.
func IsKnownStatus(s string) bool {
	for _, k := range KnownStatuses {
		if k == s {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	ids := make([]string, len(o.DishIDs))
	copy(ids, o.DishIDs)
	o.DishIDs = ids
	return o
}

// OrderFilter selects orders by status. The zero value matches everything.
type OrderFilter struct {
	status string
	set    bool
}

// AnyStatus matches every order.
func AnyStatus() OrderFilter { return OrderFilter{} }

// StatusIs matches orders whose status equals s exactly.
func StatusIs(s string) OrderFilter { return OrderFilter{status: s, set: true} }

// Match reports whether o passes the filter.
func (f OrderFilter) Match(o Order) bool {
	return !f.set || o.Status == f.status
}

// ParseDishIDs splits a comma-separated id list, trimming each id and
// dropping empty segments.
func ParseDishIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
