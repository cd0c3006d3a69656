package domain

// StatusEntry records one status change of an order.
type StatusEntry struct {
	Timestamp string `json:"timestamp"`
	OrderID   int    `json:"order_id"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// StatusHistory persists status changes next to the order data.
type StatusHistory interface {
	Save(dataPath string, entry StatusEntry) error
	Load(dataPath string) ([]StatusEntry, error)
}
