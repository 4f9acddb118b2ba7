package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/converters"
)

// service is an interface for the service layer.
type service interface {
	ListAll(ctx context.Context) []order.Order
}

// ListOrders returns the full stored collection, newest first. This is
// the kitchen dashboard's poll endpoint.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	orders := service.ListAll(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.OrdersToResponse(orders)); err != nil {
		slog.Error("Error writing response for list orders", "error", err)
	}
}
