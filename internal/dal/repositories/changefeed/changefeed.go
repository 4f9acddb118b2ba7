package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adarshpandey515/etaverse-orders/internal/dal/rabbitmq"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
)

const exchangeName = "orders.changed"

const storageKey = "orders"

// event mirrors the storage change event of the order store: the key
// name plus the full serialized collection, so co-resident readers can
// react without re-polling.
type event struct {
	Key       string        `json:"key"`
	Orders    []order.Order `json:"orders"`
	EmittedAt time.Time     `json:"emittedAt"`
}

// RabbitMQBroadcaster publishes collection change events to a fanout
// exchange.
type RabbitMQBroadcaster struct {
	client *rabbitmq.Client
}

func MustNewRabbitMQBroadcaster(client *rabbitmq.Client) *RabbitMQBroadcaster {
	err := client.DeclareExchange(rabbitmq.DeclareExchangeConfig{
		Name:    exchangeName,
		Kind:    "fanout",
		Durable: false,
	})
	if err != nil {
		panic(err)
	}

	return &RabbitMQBroadcaster{client: client}
}

// Broadcast publishes the new collection. Failures are reported to the
// caller, which treats the broadcast as best-effort.
func (b *RabbitMQBroadcaster) Broadcast(ctx context.Context, orders []order.Order) error {
	payload, err := json.Marshal(event{
		Key:       storageKey,
		Orders:    orders,
		EmittedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	return b.client.Publish(exchangeName, "", payload)
}
