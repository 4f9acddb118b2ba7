package notifier

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/notification"
)

func TestLogCapsHistory(t *testing.T) {
	log := NewLog(50)

	for i := 0; i < 60; i++ {
		log.Add(fmt.Sprintf("title %d", i), "message", notification.TypeInfo, "ORD-1-aaaaaaaaa")
	}

	entries := log.List()
	require.Len(t, entries, 50)
	// Most recent first; the ten oldest entries fell off.
	assert.Equal(t, "title 59", entries[0].Title)
	assert.Equal(t, "title 10", entries[49].Title)
}

func TestLogMarkRead(t *testing.T) {
	log := NewLog(10)

	first := log.Add("first", "m", notification.TypeInfo, "ORD-1-aaaaaaaaa")
	log.Add("second", "m", notification.TypeSuccess, "ORD-2-bbbbbbbbb")

	assert.Equal(t, 2, log.Unread())

	require.True(t, log.MarkRead(first.ID))
	assert.Equal(t, 1, log.Unread())

	assert.False(t, log.MarkRead("missing"))

	log.MarkAllRead()
	assert.Equal(t, 0, log.Unread())
}

func TestLogClear(t *testing.T) {
	log := NewLog(10)

	first := log.Add("first", "m", notification.TypeInfo, "ORD-1-aaaaaaaaa")
	log.Add("second", "m", notification.TypeWarning, "ORD-2-bbbbbbbbb")

	require.True(t, log.Clear(first.ID))
	assert.Len(t, log.List(), 1)

	assert.False(t, log.Clear(first.ID))

	log.ClearAll()
	assert.Empty(t, log.List())
}
