package status

import (
	"database/sql/driver"
	"errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

var ErrInvalidStatus = errors.New("invalid order status")

// ordinal positions in the fixed workflow. The workflow only ever moves
// forward: pending -> preparing -> ready -> completed.
var ordinals = map[Status]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusCompleted: 3,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

// CanAdvanceTo reports whether a transition from s to next is allowed.
// Any strictly forward jump is allowed, same-status and backward
// transitions are not.
func (s Status) CanAdvanceTo(next Status) bool {
	from, ok := ordinals[s]
	if !ok {
		return false
	}
	to, ok := ordinals[next]
	if !ok {
		return false
	}

	return to > from
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusPending.String():
		return StatusPending, nil
	case StatusPreparing.String():
		return StatusPreparing, nil
	case StatusReady.String():
		return StatusReady, nil
	case StatusCompleted.String():
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}
