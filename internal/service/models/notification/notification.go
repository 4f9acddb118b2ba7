package notification

import "time"

// Type classifies a notification for presentation.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
)

// Notification is a single user-facing alert produced by the
// notification engine. It is presentational state, not part of the
// order lifecycle.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	OrderID   string    `json:"orderId"`
	Read      bool      `json:"read"`
}
