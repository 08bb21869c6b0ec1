package models

// CartItem is a MenuItem snapshot plus quantity and optional kitchen notes.
// The snapshot is deliberate: later catalog edits must not change lines already
// in a cart or on a placed order.
type CartItem struct {
	MenuItem
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

func (c *CartItem) LineTotal() float64 {
	return c.Price * float64(c.Quantity)
}

// CartTotal sums price×quantity over the given lines.
func CartTotal(items []CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].LineTotal()
	}
	return total
}
