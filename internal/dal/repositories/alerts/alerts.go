package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adarshpandey515/etaverse-orders/internal/dal/rabbitmq"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
)

const exchangeName = "order.alerts"

// alert is the platform-level notification payload published when an
// order becomes ready for pickup.
type alert struct {
	OrderID   string    `json:"orderId"`
	ShortID   string    `json:"shortId"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	EmittedAt time.Time `json:"emittedAt"`
}

// RabbitMQAlertPublisher publishes ready-for-pickup alerts to a fanout
// exchange for platform-level delivery channels.
type RabbitMQAlertPublisher struct {
	client *rabbitmq.Client
}

func MustNewRabbitMQAlertPublisher(client *rabbitmq.Client) *RabbitMQAlertPublisher {
	err := client.DeclareExchange(rabbitmq.DeclareExchangeConfig{
		Name:    exchangeName,
		Kind:    "fanout",
		Durable: false,
	})
	if err != nil {
		panic(err)
	}

	return &RabbitMQAlertPublisher{client: client}
}

// PublishReady publishes a platform alert for an order that just became
// ready.
func (p *RabbitMQAlertPublisher) PublishReady(ctx context.Context, ord order.Order) error {
	payload, err := json.Marshal(alert{
		OrderID:   ord.ID,
		ShortID:   ord.ShortID(),
		Status:    ord.Status.String(),
		Title:     "Order Ready!",
		Body:      fmt.Sprintf("Order #%s is ready for pickup!", ord.ShortID()),
		EmittedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	return p.client.Publish(exchangeName, "", payload)
}
