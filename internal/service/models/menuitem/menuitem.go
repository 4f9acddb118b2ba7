package menuitem

// MenuItem is a sellable item from the menu catalog. The catalog is an
// external collaborator to the order core, consumed read-only.
type MenuItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Ingredients []string `json:"ingredients,omitempty"`
	ModelUrl    string   `json:"modelUrl"`
	Description string   `json:"description"`
}
