package ordersvc

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filerepo "github.com/adarshpandey515/etaverse-orders/internal/dal/repositories/order/file"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

func newTestService(t *testing.T, opts ...option) (*OrderService, *filerepo.FileOrderRepository) {
	t.Helper()

	repo := filerepo.NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"))
	opts = append([]option{WithRepository(repo)}, opts...)

	return MustNewOrderService(opts...), repo
}

func burgerItems() []orderitem.OrderItem {
	return []orderitem.OrderItem{
		{ID: 1, Name: "Zinger Burger Deluxe", Price: 200, Quantity: 2, Type: "non-veg", Category: "Burgers"},
	}
}

func intPtr(v int) *int {
	return &v
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "ORD-"))

	orders := svc.ListAll(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].ID)
	assert.Equal(t, "12", orders[0].TableNo)
	assert.Equal(t, float64(400), orders[0].TotalPrice)
	assert.Equal(t, float64(440), orders[0].TotalAmount)
	assert.Equal(t, status.StatusPending, orders[0].Status)
	assert.False(t, orders[0].CustomerNotified)
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "1", burgerItems(), 400)
	require.NoError(t, err)
	second, err := svc.Create(ctx, "2", burgerItems(), 400)
	require.NoError(t, err)

	orders := svc.ListAll(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "", burgerItems(), 400)
	assert.ErrorIs(t, err, ErrEmptyTableNo)
	assert.Empty(t, id)

	id, err = svc.Create(ctx, "12", nil, 400)
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Empty(t, id)

	// No partial order may exist after a rejected placement.
	assert.Empty(t, svc.ListAll(ctx))
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, id, status.StatusPreparing, intPtr(15)))

	orders := svc.ListAll(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, status.StatusPreparing, orders[0].Status)
	assert.Equal(t, 15, orders[0].EstimatedTime)
	assert.False(t, orders[0].CustomerNotified)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, id, status.StatusPreparing, intPtr(15)))
	require.NoError(t, svc.UpdateStatus(ctx, id, status.StatusPreparing, intPtr(25)))

	orders := svc.ListAll(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, status.StatusPreparing, orders[0].Status)
	// The repeated command is a no-op, it must not touch the estimate.
	assert.Equal(t, 15, orders[0].EstimatedTime)
}

func TestUpdateStatusRejectsBackward(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, id, status.StatusReady, nil))
	require.NoError(t, svc.UpdateStatus(ctx, id, status.StatusPreparing, nil))

	orders := svc.ListAll(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, status.StatusReady, orders[0].Status)
}

func TestUpdateStatusResetsNotifiedFlag(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)

	require.NoError(t, svc.MarkNotified(ctx, id))
	assert.True(t, svc.ListAll(ctx)[0].CustomerNotified)

	require.NoError(t, svc.UpdateStatus(ctx, id, status.StatusPreparing, nil))
	assert.False(t, svc.ListAll(ctx)[0].CustomerNotified)
}

func TestNoOpOnMiss(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, "nonexistent", status.StatusReady, nil))
	require.NoError(t, svc.Remove(ctx, "nonexistent"))
	require.NoError(t, svc.MarkNotified(ctx, "nonexistent"))

	orders := svc.ListAll(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, status.StatusPending, orders[0].Status)
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "12", burgerItems(), 400)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, id))
	assert.Empty(t, svc.ListAll(ctx))
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	repo := filerepo.NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"))
	svc := MustNewOrderService(
		WithRepository(repo),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	seed := []order.Order{
		{ID: "ORD-1-aaaaaaaaa", Status: status.StatusPending, Timestamp: now.Add(-1 * time.Hour), TotalAmount: 110},
		{ID: "ORD-2-bbbbbbbbb", Status: status.StatusReady, Timestamp: now.Add(-25 * time.Hour), TotalAmount: 220},
		{ID: "ORD-3-ccccccccc", Status: status.StatusCompleted, Timestamp: now.Add(-13 * time.Hour), TotalAmount: 330},
	}
	require.NoError(t, repo.SaveAll(ctx, seed))

	stats := svc.Stats(ctx)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 0, stats.Preparing)
	assert.Equal(t, 1, stats.Ready)
	assert.Equal(t, float64(110), stats.TodayRevenue)
}

func TestRecentOrders(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	repo := filerepo.NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"))
	svc := MustNewOrderService(
		WithRepository(repo),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	seed := []order.Order{
		{ID: "ORD-1-aaaaaaaaa", Status: status.StatusPending, Timestamp: now.Add(-1 * time.Hour)},
		{ID: "ORD-2-bbbbbbbbb", Status: status.StatusReady, Timestamp: now.Add(-3 * time.Hour)},
	}
	require.NoError(t, repo.SaveAll(ctx, seed))

	recent := svc.RecentOrders(ctx, 0)
	require.Len(t, recent, 1)
	assert.Equal(t, "ORD-1-aaaaaaaaa", recent[0].ID)

	wider := svc.RecentOrders(ctx, 4*time.Hour)
	assert.Len(t, wider, 2)
}
