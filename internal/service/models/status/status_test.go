package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "preparing", "ready", "completed"} {
		st, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, st.String())
	}

	_, err := ParseStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to preparing", StatusPending, StatusPreparing, true},
		{"preparing to ready", StatusPreparing, StatusReady, true},
		{"ready to completed", StatusReady, StatusCompleted, true},
		{"forward jump pending to ready", StatusPending, StatusReady, true},
		{"forward jump pending to completed", StatusPending, StatusCompleted, true},
		{"same status", StatusPreparing, StatusPreparing, false},
		{"backward ready to preparing", StatusReady, StatusPreparing, false},
		{"backward completed to pending", StatusCompleted, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCompleted, false},
		{"unknown target", StatusPending, Status("cancelled"), false},
		{"unknown source", Status("cancelled"), StatusReady, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}
