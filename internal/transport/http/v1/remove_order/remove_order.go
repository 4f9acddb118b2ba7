package removeorder

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	Remove(ctx context.Context, orderID string) error
}

// RemoveOrder deletes a completed order from the system. An unknown
// order id is a successful no-op.
func RemoveOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderID := chi.URLParam(r, "orderID")

	if err := service.Remove(r.Context(), orderID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error removing order", "order_id", orderID, "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
