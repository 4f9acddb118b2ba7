package converters

import (
	"time"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
)

// OrderResponse is the wire representation of an order. Timestamps are
// serialized as ISO-8601 strings.
type OrderResponse struct {
	ID               string                `json:"id"`
	TableNo          string                `json:"tableNo"`
	Items            []orderitem.OrderItem `json:"items"`
	TotalPrice       float64               `json:"totalPrice"`
	TotalAmount      float64               `json:"totalAmount"`
	Status           string                `json:"status"`
	Timestamp        string                `json:"timestamp"`
	EstimatedTime    int                   `json:"estimatedTime,omitempty"`
	CustomerNotified bool                  `json:"customerNotified"`
}

// OrderToResponse converts the internal Order model to its wire shape.
func OrderToResponse(o order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		TableNo:          o.TableNo,
		Items:            o.Items,
		TotalPrice:       o.TotalPrice,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status.String(),
		Timestamp:        o.Timestamp.Format(time.RFC3339Nano),
		EstimatedTime:    o.EstimatedTime,
		CustomerNotified: o.CustomerNotified,
	}
}

// OrdersToResponse converts a list of orders to their wire shape.
func OrdersToResponse(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToResponse(o))
	}

	return out
}
