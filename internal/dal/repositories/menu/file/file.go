package menufile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/menuitem"
)

// FileMenuRepository reads the sellable item catalog from a JSON file.
// The catalog is owned elsewhere; this adapter only answers "what is
// currently on the menu" and degrades to an empty list when the file
// cannot be read.
type FileMenuRepository struct {
	path string
}

func NewFileMenuRepository(path string) *FileMenuRepository {
	return &FileMenuRepository{path: path}
}

// LoadAll returns the current list of sellable items.
func (r *FileMenuRepository) LoadAll(ctx context.Context) ([]menuitem.MenuItem, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		slog.Warn("Failed to read menu catalog, serving empty menu", "path", r.path, "error", err)

		return []menuitem.MenuItem{}, nil
	}

	var items []menuitem.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Corrupt menu catalog, serving empty menu", "path", r.path, "error", err)

		return []menuitem.MenuItem{}, nil
	}

	return items, nil
}
