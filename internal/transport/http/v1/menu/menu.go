package menu

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/menuitem"
)

// service is an interface for the service layer.
type service interface {
	Items(ctx context.Context) []menuitem.MenuItem
}

// ListItems returns the current list of sellable items.
func ListItems(w http.ResponseWriter, r *http.Request, service service) {
	items := service.Items(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		slog.Error("Error writing response for menu items", "error", err)
	}
}
