package marknotified

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	MarkNotified(ctx context.Context, orderID string) error
}

// MarkNotified records that the customer has seen the order's current
// status.
func MarkNotified(w http.ResponseWriter, r *http.Request, service service) {
	orderID := chi.URLParam(r, "orderID")

	if err := service.MarkNotified(r.Context(), orderID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error marking order as notified", "order_id", orderID, "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
