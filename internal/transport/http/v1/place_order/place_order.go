package placeorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/services/ordersvc"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, tableNo string, items []orderitem.OrderItem, totalPrice float64) (string, error)
}

// paymentLinks builds a payment deep link for a payable amount.
type paymentLinks interface {
	Link(amount float64) string
}

type request struct {
	TableNo    string                `json:"tableNo"`
	Items      []orderitem.OrderItem `json:"items"`
	TotalPrice float64               `json:"totalPrice"`
}

type response struct {
	ID          string  `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentUrl  string  `json:"paymentUrl"`
}

// PlaceOrder handles customer checkout. Validation failures come back
// as 400 before any store mutation; a storage failure surfaces a
// distinct "try again" signal instead of pretending success.
func PlaceOrder(w http.ResponseWriter, r *http.Request, service service, links paymentLinks) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for place order", "error", err)

		return
	}

	id, err := service.Create(r.Context(), req.TableNo, req.Items, req.TotalPrice)
	if err != nil {
		if errors.Is(err, ordersvc.ErrEmptyTableNo) || errors.Is(err, ordersvc.ErrNoItems) {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		http.Error(w, "Order failed, please try again", http.StatusServiceUnavailable)
		slog.Error("Error placing order", "error", err)

		return
	}

	totalAmount := order.TotalAmount(req.TotalPrice)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response{
		ID:          id,
		TotalAmount: totalAmount,
		PaymentUrl:  links.Link(totalAmount),
	}); err != nil {
		slog.Error("Error writing response for place order", "error", err)
	}
}
