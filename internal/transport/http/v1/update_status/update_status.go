package updatestatus

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

// service is an interface for the service layer.
type service interface {
	UpdateStatus(ctx context.Context, orderID string, newStatus status.Status, estimatedTime *int) error
}

type request struct {
	Status        string `json:"status"`
	EstimatedTime *int   `json:"estimatedTime,omitempty"`
}

// UpdateStatus handles a kitchen staff status-transition command. An
// unknown order id is a successful no-op.
func UpdateStatus(w http.ResponseWriter, r *http.Request, service service) {
	orderID := chi.URLParam(r, "orderID")

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for update status", "error", err)

		return
	}

	newStatus, err := status.ParseStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := service.UpdateStatus(r.Context(), orderID, newStatus, req.EstimatedTime); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating order status", "order_id", orderID, "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
