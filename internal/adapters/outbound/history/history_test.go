package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/history"
	"github.com/zestyzomato/zesty/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	data := filepath.Join(t.TempDir(), "zesty.json")
	h := history.New()

	entry := domain.StatusEntry{
		Timestamp: "2026-02-25T10:00:00Z",
		OrderID:   1,
		From:      "received",
		To:        "served",
	}

	require.NoError(t, h.Save(data, entry))

	entries, err := h.Load(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	data := filepath.Join(t.TempDir(), "zesty.json")
	h := history.New()

	require.NoError(t, h.Save(data, domain.StatusEntry{Timestamp: "t1", OrderID: 1, From: "received", To: "preparing"}))
	require.NoError(t, h.Save(data, domain.StatusEntry{Timestamp: "t2", OrderID: 2, From: "received", To: "cancelled"}))
	require.NoError(t, h.Save(data, domain.StatusEntry{Timestamp: "t3", OrderID: 1, From: "preparing", To: "served"}))

	entries, err := h.Load(data)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	mine := history.ForOrder(entries, 1)
	require.Len(t, mine, 2)
	assert.Equal(t, "preparing", mine[0].To)
	assert.Equal(t, "served", mine[1].To)
}

func TestHistory_LoadEmpty(t *testing.T) {
	h := history.New()

	entries, err := h.Load(filepath.Join(t.TempDir(), "zesty.json"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	data := filepath.Join(t.TempDir(), "deep", "nested", "zesty.json")
	h := history.New()

	require.NoError(t, h.Save(data, domain.StatusEntry{Timestamp: "t1", OrderID: 1, To: "ready"}))

	entries, err := h.Load(data)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistory_SeparatePerDataFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	h := history.New()

	require.NoError(t, h.Save(a, domain.StatusEntry{Timestamp: "t1", OrderID: 1, From: "received", To: "served"}))

	entries, err := h.Load(b)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = h.Load(a)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistory_Path(t *testing.T) {
	assert.Equal(t,
		filepath.Join("shop", ".zesty", "history", "orders.json.status.json"),
		history.Path(filepath.Join("shop", "orders.json")))
}

func TestHistory_LoadCorrupt(t *testing.T) {
	data := filepath.Join(t.TempDir(), "zesty.json")
	fp := history.Path(data)
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("{"), 0644))

	_, err := history.New().Load(data)
	assert.ErrorContains(t, err, "parsing zesty.json.status.json")
}
