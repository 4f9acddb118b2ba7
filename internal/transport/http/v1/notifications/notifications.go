package notifications

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/notification"
	"github.com/adarshpandey515/etaverse-orders/internal/worker/notifier"
)

type listResponse struct {
	Notifications []notification.Notification `json:"notifications"`
	Unread        int                         `json:"unread"`
}

// List returns the notification history, most recent first. With
// ?unread=true only unread entries are returned.
func List(w http.ResponseWriter, r *http.Request, log *notifier.Log) {
	entries := log.List()

	if r.URL.Query().Get("unread") == "true" {
		unread := make([]notification.Notification, 0, len(entries))
		for _, n := range entries {
			if !n.Read {
				unread = append(unread, n)
			}
		}
		entries = unread
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listResponse{
		Notifications: entries,
		Unread:        log.Unread(),
	}); err != nil {
		slog.Error("Error writing response for list notifications", "error", err)
	}
}

// MarkRead marks a single notification as read.
func MarkRead(w http.ResponseWriter, r *http.Request, log *notifier.Log) {
	id := chi.URLParam(r, "notificationID")

	if !log.MarkRead(id) {
		http.Error(w, "Notification not found", http.StatusNotFound)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead marks the whole history as read.
func MarkAllRead(w http.ResponseWriter, r *http.Request, log *notifier.Log) {
	log.MarkAllRead()

	w.WriteHeader(http.StatusNoContent)
}

// Clear removes a single notification from the history.
func Clear(w http.ResponseWriter, r *http.Request, log *notifier.Log) {
	id := chi.URLParam(r, "notificationID")

	if !log.Clear(id) {
		http.Error(w, "Notification not found", http.StatusNotFound)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearAll empties the notification history.
func ClearAll(w http.ResponseWriter, r *http.Request, log *notifier.Log) {
	log.ClearAll()

	w.WriteHeader(http.StatusNoContent)
}
