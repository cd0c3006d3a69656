package storage

import (
	"fmt"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/jsonstore"
	"github.com/zestyzomato/zesty/internal/adapters/outbound/pebblestore"
	"github.com/zestyzomato/zesty/internal/domain"
)

// Open returns the snapshot store for the configured backend.
func Open(cfg domain.Config) (domain.SnapshotStore, error) {
	switch cfg.Backend {
	case domain.BackendJSON, "":
		return jsonstore.New(cfg.DataFile), nil
	case domain.BackendPebble:
		return pebblestore.New(cfg.DataFile), nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownBackend, cfg.Backend)
	}
}
