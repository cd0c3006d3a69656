package pebblestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/pebble"

	"github.com/zestyzomato/zesty/internal/domain"
)

// Key layout: one record per dish and per order plus the counter.
//
//	menu/<dish id>        -> Dish JSON
//	order/<%010d id>      -> Order JSON
//	meta/order_counter    -> decimal counter
const (
	menuPrefix  = "menu/"
	orderPrefix = "order/"
	metaPrefix  = "meta/"
	counterKey  = metaPrefix + "order_counter"
)

// Store implements domain.SnapshotStore on a Pebble database directory.
// The database is opened for each call and closed before returning.
type Store struct {
	dir string
}

// New creates a store backed by the Pebble directory dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the database directory.
func (s *Store) Path() string { return s.dir }

// Load reads every record. Returns (nil, nil) if the directory does not exist
// or holds no counter yet.
func (s *Store) Load() (*domain.Snapshot, error) {
	if _, err := os.Stat(s.dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	db, err := pebble.Open(s.dir, &pebble.Options{ErrorIfNotExists: true})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrSnapshotCorrupt, s.dir, err)
	}
	defer db.Close()

	raw, closer, err := db.Get([]byte(counterKey))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	counter, convErr := strconv.Atoi(string(raw))
	closer.Close()
	if convErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSnapshotCorrupt, counterKey, convErr)
	}

	snap := domain.NewSnapshot()
	snap.OrderCounter = counter

	err = scan(db, menuPrefix, func(key, value []byte) error {
		var d domain.Dish
		if err := json.Unmarshal(value, &d); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrSnapshotCorrupt, key, err)
		}
		snap.Menu[d.ID] = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = scan(db, orderPrefix, func(key, value []byte) error {
		var o domain.Order
		if err := json.Unmarshal(value, &o); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrSnapshotCorrupt, key, err)
		}
		if o.DishIDs == nil {
			o.DishIDs = []string{}
		}
		snap.Orders[o.ID] = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Save replaces every record with the contents of snap in one synced batch.
func (s *Store) Save(snap *domain.Snapshot) error {
	db, err := pebble.Open(s.dir, &pebble.Options{})
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.dir, err)
	}
	defer db.Close()

	b := db.NewBatch()
	defer b.Close()

	for _, p := range []string{menuPrefix, orderPrefix, metaPrefix} {
		if err := b.DeleteRange([]byte(p), prefixEnd(p), nil); err != nil {
			return err
		}
	}

	for id, d := range snap.Menu {
		v, err := json.Marshal(d)
		if err != nil {
			return err
		}
		if err := b.Set([]byte(menuPrefix+id), v, nil); err != nil {
			return err
		}
	}

	for id, o := range snap.Orders {
		v, err := json.Marshal(o)
		if err != nil {
			return err
		}
		if err := b.Set(orderKey(id), v, nil); err != nil {
			return err
		}
	}

	if err := b.Set([]byte(counterKey), []byte(strconv.Itoa(snap.OrderCounter)), nil); err != nil {
		return err
	}

	return b.Commit(pebble.Sync)
}

func orderKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%010d", orderPrefix, id))
}

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p string) []byte {
	end := []byte(p)
	end[len(end)-1]++
	return end
}

func scan(db *pebble.DB, prefix string, fn func(key, value []byte) error) error {
	iter, err := db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixEnd(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if err := fn(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}
