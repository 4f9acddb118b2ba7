package payment

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/viper"
)

// LinkBuilder constructs UPI payment intent URIs for placed orders.
// The system only hands the customer a payment deep link; it never
// verifies that a payment happened.
type LinkBuilder struct {
	payeeAddress string
	payeeName    string
	currency     string
}

// NewLinkBuilder reads the payee details from configuration.
func NewLinkBuilder() *LinkBuilder {
	currency := viper.GetString("payment.upi.currency")
	if currency == "" {
		currency = "INR"
	}

	return &LinkBuilder{
		payeeAddress: viper.GetString("payment.upi.payee_address"),
		payeeName:    viper.GetString("payment.upi.payee_name"),
		currency:     currency,
	}
}

// Link returns a upi://pay deep link for the given payable amount.
func (b *LinkBuilder) Link(amount float64) string {
	params := url.Values{}
	params.Set("pa", b.payeeAddress)
	params.Set("pn", b.payeeName)
	params.Set("cu", b.currency)
	params.Set("am", strconv.FormatFloat(amount, 'f', -1, 64))

	return fmt.Sprintf("upi://pay?%s", params.Encode())
}
