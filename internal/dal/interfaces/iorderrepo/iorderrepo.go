package iorderrepo

import (
	"context"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
)

// IOrderRepository is keyed storage for the full order collection. The
// collection is always replaced wholesale, never patched field by
// field.
type IOrderRepository interface {
	// LoadAll returns all persisted orders, newest first.
	LoadAll(ctx context.Context) ([]order.Order, error)
	// SaveAll replaces the entire persisted collection in a single
	// write.
	SaveAll(ctx context.Context, orders []order.Order) error
}

// IBroadcaster propagates a freshly saved collection to co-resident
// readers. Delivery is best-effort; polling remains the primary
// consistency mechanism.
type IBroadcaster interface {
	Broadcast(ctx context.Context, orders []order.Order) error
}
