package filerepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

func newTestRepo(t *testing.T) *FileOrderRepository {
	t.Helper()

	return NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"))
}

func TestLoadAllMissingFile(t *testing.T) {
	repo := newTestRepo(t)

	orders, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLoadAllCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileOrderRepository(path)

	orders, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSaveAllRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := order.Order{
		ID:      "ORD-1742041800000-k3j9ffz1q",
		TableNo: "12",
		Items: []orderitem.OrderItem{
			{
				ID:          7,
				Name:        "Zinger Burger Deluxe",
				Price:       250,
				Quantity:    2,
				Type:        "non-veg",
				Category:    "Burgers",
				ModelUrl:    "/models/zinger-burger.glb",
				Description: "Crispy chicken fillet.",
			},
		},
		TotalPrice:       500,
		TotalAmount:      550,
		Status:           status.StatusPreparing,
		Timestamp:        time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC),
		EstimatedTime:    15,
		CustomerNotified: false,
	}

	require.NoError(t, repo.SaveAll(ctx, []order.Order{want}))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, want.ID, got[0].ID)
	assert.Equal(t, want.TableNo, got[0].TableNo)
	assert.Equal(t, want.Items, got[0].Items)
	assert.Equal(t, want.TotalPrice, got[0].TotalPrice)
	assert.Equal(t, want.TotalAmount, got[0].TotalAmount)
	assert.Equal(t, want.Status, got[0].Status)
	assert.True(t, want.Timestamp.Equal(got[0].Timestamp))
	assert.Equal(t, want.EstimatedTime, got[0].EstimatedTime)
	assert.Equal(t, want.CustomerNotified, got[0].CustomerNotified)
}

func TestSaveAllReplacesCollection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := order.Order{ID: "ORD-1-aaaaaaaaa", Status: status.StatusPending, Timestamp: time.Now()}
	second := order.Order{ID: "ORD-2-bbbbbbbbb", Status: status.StatusPending, Timestamp: time.Now()}

	require.NoError(t, repo.SaveAll(ctx, []order.Order{first, second}))
	require.NoError(t, repo.SaveAll(ctx, []order.Order{second}))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

type recordingBroadcaster struct {
	calls int
	last  []order.Order
}

func (b *recordingBroadcaster) Broadcast(ctx context.Context, orders []order.Order) error {
	b.calls++
	b.last = orders

	return nil
}

func TestSaveAllBroadcasts(t *testing.T) {
	bc := &recordingBroadcaster{}
	repo := NewFileOrderRepository(
		filepath.Join(t.TempDir(), "orders.json"),
		WithBroadcaster(bc),
	)

	orders := []order.Order{{ID: "ORD-1-aaaaaaaaa", Status: status.StatusPending, Timestamp: time.Now()}}
	require.NoError(t, repo.SaveAll(context.Background(), orders))

	assert.Equal(t, 1, bc.calls)
	assert.Len(t, bc.last, 1)
}
