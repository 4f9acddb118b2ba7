package order

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

// serviceChargeRate is the fixed surcharge applied on top of the item
// total to derive the payable amount.
const serviceChargeRate = 0.10

const idPrefix = "ORD"

// Order represents a placed order in the system.
type Order struct {
	ID               string                `json:"id"`
	TableNo          string                `json:"tableNo"`
	Items            []orderitem.OrderItem `json:"items"`
	TotalPrice       float64               `json:"totalPrice"`
	TotalAmount      float64               `json:"totalAmount"`
	Status           status.Status         `json:"status"`
	Timestamp        time.Time             `json:"timestamp"`
	EstimatedTime    int                   `json:"estimatedTime,omitempty"`
	CustomerNotified bool                  `json:"customerNotified"`
}

// ServiceCharge returns the surcharge for a given item total, rounded
// to the nearest whole currency unit.
func ServiceCharge(totalPrice float64) float64 {
	return math.Round(totalPrice * serviceChargeRate)
}

// TotalAmount returns the payable amount: the item total plus the
// service charge.
func TotalAmount(totalPrice float64) float64 {
	return totalPrice + ServiceCharge(totalPrice)
}

// NewID builds an order identifier of the form
// "ORD-<epochMillis>-<9 base36 chars>". Uniqueness holds by
// construction; a collision is treated as an unchecked precondition
// violation.
func NewID(now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", idPrefix, now.UnixMilli(), randBase36(9))
}

// ShortID is the human-displayed order number: the segment of the full
// identifier after the first separator.
func (o Order) ShortID() string {
	parts := strings.SplitN(o.ID, "-", 3)
	if len(parts) < 2 {
		return o.ID
	}

	return parts[1]
}

func randBase36(n int) string {
	b := strings.Builder{}
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}

	return b.String()
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
