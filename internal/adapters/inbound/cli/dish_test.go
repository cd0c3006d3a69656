package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestyzomato/zesty/internal/domain"
)

func TestDishCommands_AddAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "dish", "add", "D1", "Pizza", "9.50")
	require.NoError(t, err)
	assert.Contains(t, out, "Dish D1 added")

	_, err = run(t, dir, "dish", "add", "D2", "Soda", "1.5", "--unavailable")
	require.NoError(t, err)

	out, err = run(t, dir, "dish", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pizza")
	assert.Contains(t, out, "$9.50")
	assert.Contains(t, out, "unavailable")

	out, err = run(t, dir, "dish", "list", "--json")
	require.NoError(t, err)
	var menu []domain.Dish
	require.NoError(t, json.Unmarshal([]byte(out), &menu))
	assert.Equal(t, []domain.Dish{
		{ID: "D1", Name: "Pizza", Price: 9.5, Available: true},
		{ID: "D2", Name: "Soda", Price: 1.5, Available: false},
	}, menu)
}

func TestDishCommands_InvalidPrice(t *testing.T) {
	_, err := run(t, t.TempDir(), "dish", "add", "D1", "Pizza", "cheap")
	assert.ErrorContains(t, err, "not a number")

	_, err = run(t, t.TempDir(), "dish", "add", "--", "D1", "Pizza", "-3")
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestDishCommands_NonFinitePrice(t *testing.T) {
	for _, price := range []string{"NaN", "Inf", "+Inf"} {
		dir := t.TempDir()
		_, err := run(t, dir, "dish", "add", "X", "Bad", price)
		assert.ErrorContains(t, err, "not a number", price)

		_, err = run(t, dir, "dish", "add", "D1", "Pizza", "9.50")
		require.NoError(t, err, "later saves still work after %s", price)
	}
}

func TestDishCommands_Available(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "dish", "add", "D1", "Pizza", "9.50", "--unavailable")
	require.NoError(t, err)

	out, err := run(t, dir, "dish", "available", "D1", "yes")
	require.NoError(t, err)
	assert.Contains(t, out, "now available")

	out, err = run(t, dir, "dish", "available", "ghost", "yes")
	require.NoError(t, err, "unknown dish is a no-op")
	assert.Contains(t, out, "not on the menu")
}

func TestDishCommands_RemoveUnknownIsNoop(t *testing.T) {
	out, err := run(t, t.TempDir(), "dish", "remove", "ghost")
	require.NoError(t, err)
	assert.Contains(t, out, "not on the menu")
}

func TestDishCommands_BackendFlagKeepsConfiguredDataFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".zesty.yaml"), []byte("data_file: orders.json\n"), 0644))

	_, err := runWithConfig(t, dir, "dish", "add", "D1", "Pizza", "9.50")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)

	out, err := runWithConfig(t, dir, "--backend", "json", "dish", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pizza")

	_, err = os.Stat(filepath.Join(dir, "zesty_data.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestDishCommands_BackendFlagSwitchesDefaultDataPath(t *testing.T) {
	dir := t.TempDir()

	_, err := runWithConfig(t, dir, "--backend", "pebble", "dish", "add", "D1", "Pizza", "9.50")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "zesty_data.pebble"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
