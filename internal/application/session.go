package application

import "github.com/zestyzomato/zesty/internal/domain"

// Session pairs an OrderingService with the store its state came from.
// Inbound adapters open a session per command, run operations, and Commit
// when something changed.
type Session struct {
	Service *OrderingService
	store   domain.SnapshotStore
}

// OpenSession builds a service and loads it from store.
func OpenSession(store domain.SnapshotStore, opts ...Option) (*Session, error) {
	svc := NewOrderingService(opts...)
	if err := svc.Load(store); err != nil {
		return nil, err
	}
	return &Session{Service: svc, store: store}, nil
}

// Commit saves the service state back to the store.
func (s *Session) Commit() error {
	return s.Service.Save(s.store)
}
