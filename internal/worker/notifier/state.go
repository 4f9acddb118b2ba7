package notifier

import (
	"context"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

// State records the last status a notification was issued for, per
// order. Re-observing a recorded status must be a no-op.
type State interface {
	Get(ctx context.Context, orderID string) (status.Status, bool)
	Set(ctx context.Context, orderID string, s status.Status)
}

// MemoryState keeps the dedup map in process memory. It does not
// survive a restart, matching the reference behavior.
type MemoryState struct {
	mu   sync.RWMutex
	seen map[string]status.Status
}

func NewMemoryState() *MemoryState {
	return &MemoryState{seen: make(map[string]status.Status)}
}

func (m *MemoryState) Get(ctx context.Context, orderID string) (status.Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.seen[orderID]

	return s, ok
}

func (m *MemoryState) Set(ctx context.Context, orderID string, s status.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seen[orderID] = s
}

const redisStateKey = "notifier:last_status"

// RedisState persists the dedup map in a Redis hash so notifications
// are not re-issued after a restart. Redis failures degrade to the
// unseen case; the worst outcome is a repeated notification, never a
// lost one.
type RedisState struct {
	client *redis.Client
}

func NewRedisState(client *redis.Client) *RedisState {
	return &RedisState{client: client}
}

func (r *RedisState) Get(ctx context.Context, orderID string) (status.Status, bool) {
	val, err := r.client.HGet(ctx, redisStateKey, orderID).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("Failed to read notifier state from redis", "order_id", orderID, "error", err)

		return "", false
	}

	s, err := status.ParseStatus(val)
	if err != nil {
		return "", false
	}

	return s, true
}

func (r *RedisState) Set(ctx context.Context, orderID string, s status.Status) {
	if err := r.client.HSet(ctx, redisStateKey, orderID, s.String()).Err(); err != nil {
		slog.Warn("Failed to write notifier state to redis", "order_id", orderID, "error", err)
	}
}
