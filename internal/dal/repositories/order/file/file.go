package filerepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/adarshpandey515/etaverse-orders/internal/dal/interfaces/iorderrepo"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
)

// FileOrderRepository persists the order collection as a single JSON
// document on disk. It is the single-host stand-in for a shared
// key-value store: the order list is best-effort local state, so an
// unreadable or corrupt file degrades to an empty collection instead of
// failing the caller.
type FileOrderRepository struct {
	path        string
	mu          sync.Mutex
	broadcaster iorderrepo.IBroadcaster
}

// option is a function that configures the repository.
type option func(*FileOrderRepository)

func NewFileOrderRepository(path string, opts ...option) *FileOrderRepository {
	r := &FileOrderRepository{path: path}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithBroadcaster sets the change broadcaster fired after every save.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithBroadcaster(b iorderrepo.IBroadcaster) option {
	return func(r *FileOrderRepository) {
		r.broadcaster = b
	}
}

// LoadAll returns all persisted orders, newest first by construction
// order. A missing or corrupt file yields an empty collection.
func (r *FileOrderRepository) LoadAll(ctx context.Context) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLocked()
}

func (r *FileOrderRepository) loadLocked() ([]order.Order, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []order.Order{}, nil
		}

		slog.Warn("Failed to read order storage, starting empty", "path", r.path, "error", err)

		return []order.Order{}, nil
	}

	var orders []order.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		slog.Warn("Corrupt order storage, starting empty", "path", r.path, "error", err)

		return []order.Order{}, nil
	}

	if orders == nil {
		orders = []order.Order{}
	}

	return orders, nil
}

// SaveAll replaces the persisted collection with a single atomic write
// (temp file plus rename).
func (r *FileOrderRepository) SaveAll(ctx context.Context, orders []order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp order storage: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write order storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close order storage: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace order storage: %w", err)
	}

	if r.broadcaster != nil {
		if err := r.broadcaster.Broadcast(ctx, orders); err != nil {
			slog.Warn("Failed to broadcast order collection change", "error", err)
		}
	}

	return nil
}
