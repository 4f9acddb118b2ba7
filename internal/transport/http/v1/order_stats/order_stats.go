package orderstats

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adarshpandey515/etaverse-orders/internal/service/services/ordersvc"
)

// service is an interface for the service layer.
type service interface {
	Stats(ctx context.Context) ordersvc.Stats
}

// OrderStats returns aggregate order counters for the dashboard
// header.
func OrderStats(w http.ResponseWriter, r *http.Request, service service) {
	stats := service.Stats(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		slog.Error("Error writing response for order stats", "error", err)
	}
}
