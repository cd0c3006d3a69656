package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zestyzomato/zesty/internal/domain"
)

// historyDir sits next to the data it describes. Each data file gets its own
// log, named after the data file, since order ids restart at 1 per file.
const (
	historyDir    = ".zesty/history"
	historySuffix = ".status.json"
)

// FileHistory implements domain.StatusHistory as one JSON array per data file.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Save appends entry to the log belonging to dataPath, creating it on first use.
func (h *FileHistory) Save(dataPath string, entry domain.StatusEntry) error {
	entries, err := h.Load(dataPath)
	if err != nil {
		return err
	}

	fp := Path(dataPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(append(entries, entry), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// Load returns every entry recorded for dataPath, oldest first. A data file
// with no recorded changes yields an empty slice.
func (h *FileHistory) Load(dataPath string) ([]domain.StatusEntry, error) {
	fp := Path(dataPath)
	data, err := os.ReadFile(fp)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.StatusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(fp), err)
	}
	return entries, nil
}

// ForOrder keeps the entries of one order, preserving their order.
func ForOrder(entries []domain.StatusEntry, orderID int) []domain.StatusEntry {
	var out []domain.StatusEntry
	for _, e := range entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out
}

// Path returns the history file for dataPath, e.g.
// "shop/orders.json" -> "shop/.zesty/history/orders.json.status.json".
func Path(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), historyDir, filepath.Base(dataPath)+historySuffix)
}
