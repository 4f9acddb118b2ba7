package notifier

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/notification"
)

// DefaultLogSize caps the retained notification history.
const DefaultLogSize = 50

// Log is a bounded in-memory notification history, most-recent-first.
// It is presentational state shared between the worker and the HTTP
// surface, so every method is safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []notification.Notification
	size    int
}

func NewLog(size int) *Log {
	if size <= 0 {
		size = DefaultLogSize
	}

	return &Log{size: size}
}

// Add prepends a notification and trims the history to the cap.
func (l *Log) Add(title, message string, typ notification.Type, orderID string) notification.Notification {
	n := notification.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
		OrderID:   orderID,
		Read:      false,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]notification.Notification{n}, l.entries...)
	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}

	return n
}

// List returns a copy of the history, most recent first.
func (l *Log) List() []notification.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]notification.Notification, len(l.entries))
	copy(out, l.entries)

	return out
}

// Unread returns the number of unread notifications.
func (l *Log) Unread() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, n := range l.entries {
		if !n.Read {
			count++
		}
	}

	return count
}

// MarkRead marks a single notification as read. It reports whether the
// notification was found.
func (l *Log) MarkRead(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Read = true

			return true
		}
	}

	return false
}

// MarkAllRead marks every notification as read.
func (l *Log) MarkAllRead() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		l.entries[i].Read = true
	}
}

// Clear removes a single notification. It reports whether the
// notification was found.
func (l *Log) Clear(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)

			return true
		}
	}

	return false
}

// ClearAll empties the history.
func (l *Log) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}
