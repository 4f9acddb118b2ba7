package orderitem

// OrderItem is a single menu item line within an order. Items are
// frozen once attached to an order.
type OrderItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	ModelUrl    string  `json:"modelUrl"`
	Description string  `json:"description"`
}

// Subtotal returns price times quantity for this line.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
