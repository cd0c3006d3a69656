package domain_test

import (
	"errors"
	"testing"

	"github.com/zestyzomato/zesty/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot(t *testing.T) {
	s := domain.NewSnapshot()
	assert.Empty(t, s.Menu)
	assert.Empty(t, s.Orders)
	assert.Equal(t, 1, s.OrderCounter)
	assert.NoError(t, s.Validate())
}

func TestSnapshot_Validate(t *testing.T) {
	valid := func() *domain.Snapshot {
		return &domain.Snapshot{
			Menu:         map[string]domain.Dish{"D1": {ID: "D1", Name: "Pizza", Price: 9.5}},
			Orders:       map[int]domain.Order{1: {ID: 1, CustomerName: "Alice", DishIDs: []string{"D1"}}},
			OrderCounter: 2,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("zero counter", func(t *testing.T) {
		s := valid()
		s.OrderCounter = 0
		assert.True(t, errors.Is(s.Validate(), domain.ErrSnapshotCorrupt))
	})

	t.Run("mismatched dish key", func(t *testing.T) {
		s := valid()
		s.Menu["D9"] = domain.Dish{ID: "D1"}
		assert.ErrorContains(t, s.Validate(), "D9")
	})

	t.Run("negative price", func(t *testing.T) {
		s := valid()
		s.Menu["D1"] = domain.Dish{ID: "D1", Price: -1}
		assert.True(t, errors.Is(s.Validate(), domain.ErrSnapshotCorrupt))
	})

	t.Run("order id at counter", func(t *testing.T) {
		s := valid()
		s.Orders[2] = domain.Order{ID: 2}
		assert.ErrorContains(t, s.Validate(), "counter")
	})

	t.Run("mismatched order key", func(t *testing.T) {
		s := valid()
		s.Orders[1] = domain.Order{ID: 7}
		assert.True(t, errors.Is(s.Validate(), domain.ErrSnapshotCorrupt))
	})
}
