package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adarshpandey515/etaverse-orders/internal/dal/interfaces/iorderrepo"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

// DefaultRecentWindow scopes the "recent orders" view used by the
// notification path and the customer's active orders list.
const DefaultRecentWindow = 2 * time.Hour

var (
	ErrEmptyTableNo = errors.New("table number is required")
	ErrNoItems      = errors.New("order must contain at least one item")
)

// Stats are aggregate counters over the stored collection. Today's
// figures use the local calendar day; status counts cover all orders.
type Stats struct {
	Total        int     `json:"total"`
	Today        int     `json:"today"`
	Pending      int     `json:"pending"`
	Preparing    int     `json:"preparing"`
	Ready        int     `json:"ready"`
	TodayRevenue float64 `json:"todayRevenue"`
}

// OrderService enforces the order lifecycle and provides derived views.
// It is the only writer of the order collection.
type OrderService struct {
	repo iorderrepo.IOrderRepository
	now  func() time.Time
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		panic("ordersvc: order repository is required")
	}

	return s
}

// WithRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.repo = repo
	}
}

// WithClock overrides the time source, used by tests to pin the
// calendar-day boundary.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *OrderService) {
		s.now = now
	}
}

// Create places a new order: validates the request, computes the
// payable amount, assigns an identifier and prepends the order to the
// stored collection. The returned id is empty when the order could not
// be persisted.
func (s *OrderService) Create(
	ctx context.Context,
	tableNo string,
	items []orderitem.OrderItem,
	totalPrice float64,
) (string, error) {
	if tableNo == "" {
		return "", ErrEmptyTableNo
	}
	if len(items) == 0 {
		return "", ErrNoItems
	}

	now := s.now()
	newOrder := order.Order{
		ID:               order.NewID(now),
		TableNo:          tableNo,
		Items:            items,
		TotalPrice:       totalPrice,
		TotalAmount:      order.TotalAmount(totalPrice),
		Status:           status.StatusPending,
		Timestamp:        now,
		CustomerNotified: false,
	}

	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load orders: %w", err)
	}

	orders = append([]order.Order{newOrder}, orders...)
	if err := s.repo.SaveAll(ctx, orders); err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	return newOrder.ID, nil
}

// UpdateStatus moves an order forward through the workflow and resets
// its notification flag. A lookup miss or a non-forward transition is a
// silent no-op, so late or duplicate commands are safe to replay.
func (s *OrderService) UpdateStatus(
	ctx context.Context,
	orderID string,
	newStatus status.Status,
	estimatedTime *int,
) error {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}

		if !orders[i].Status.CanAdvanceTo(newStatus) {
			slog.Debug("Ignoring non-forward status transition",
				"order_id", orderID,
				"from", orders[i].Status,
				"to", newStatus,
			)

			return nil
		}

		orders[i].Status = newStatus
		if estimatedTime != nil {
			orders[i].EstimatedTime = *estimatedTime
		}
		orders[i].CustomerNotified = false

		if err := s.repo.SaveAll(ctx, orders); err != nil {
			return fmt.Errorf("failed to save orders: %w", err)
		}

		return nil
	}

	slog.Debug("Status update for unknown order ignored", "order_id", orderID)

	return nil
}

// MarkNotified records that the customer has seen the current status.
// A lookup miss is a no-op.
func (s *OrderService) MarkNotified(ctx context.Context, orderID string) error {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}

		orders[i].CustomerNotified = true
		if err := s.repo.SaveAll(ctx, orders); err != nil {
			return fmt.Errorf("failed to save orders: %w", err)
		}

		return nil
	}

	return nil
}

// Remove deletes an order from the collection. A lookup miss is a
// no-op because the command may race with a removal from another
// client.
func (s *OrderService) Remove(ctx context.Context, orderID string) error {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	kept := orders[:0]
	for _, o := range orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}

	if len(kept) == len(orders) {
		return nil
	}

	if err := s.repo.SaveAll(ctx, kept); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}

	return nil
}

// ListAll returns the full stored collection, newest first. Storage
// failures degrade to an empty list so the dashboard stays renderable.
func (s *OrderService) ListAll(ctx context.Context) []order.Order {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		slog.Error("Failed to load orders", "error", err)

		return []order.Order{}
	}

	return orders
}

// Stats aggregates counters over the stored collection. Storage
// failures degrade to zero values.
func (s *OrderService) Stats(ctx context.Context) Stats {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		slog.Error("Failed to load orders for stats", "error", err)

		return Stats{}
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := Stats{Total: len(orders)}
	for _, o := range orders {
		if !o.Timestamp.Before(midnight) {
			stats.Today++
			stats.TodayRevenue += o.TotalAmount
		}

		switch o.Status {
		case status.StatusPending:
			stats.Pending++
		case status.StatusPreparing:
			stats.Preparing++
		case status.StatusReady:
			stats.Ready++
		}
	}

	return stats
}

// RecentOrders returns orders created within the given window of now.
// A non-positive window falls back to the default two hours.
func (s *OrderService) RecentOrders(ctx context.Context, window time.Duration) []order.Order {
	if window <= 0 {
		window = DefaultRecentWindow
	}

	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		slog.Error("Failed to load recent orders", "error", err)

		return []order.Order{}
	}

	cutoff := s.now().Add(-window)

	recent := []order.Order{}
	for _, o := range orders {
		if !o.Timestamp.Before(cutoff) {
			recent = append(recent, o)
		}
	}

	return recent
}
