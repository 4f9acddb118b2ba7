package recentorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/converters"
)

// service is an interface for the service layer.
type service interface {
	RecentOrders(ctx context.Context, window time.Duration) []order.Order
}

// RecentOrders returns the customer's active orders: those created
// within the sliding window (default two hours). The window can be
// widened with ?hours=.
func RecentOrders(w http.ResponseWriter, r *http.Request, service service) {
	var window time.Duration
	if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
		hours, err := strconv.Atoi(hoursStr)
		if err != nil || hours <= 0 {
			http.Error(w, "Invalid hours parameter", http.StatusBadRequest)

			return
		}
		window = time.Duration(hours) * time.Hour
	}

	orders := service.RecentOrders(r.Context(), window)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.OrdersToResponse(orders)); err != nil {
		slog.Error("Error writing response for recent orders", "error", err)
	}
}
