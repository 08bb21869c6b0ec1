package store

import "github.com/csakala/tableside/internal/models"

// AddToCart increments quantity if the item is already in the cart, otherwise
// inserts a new line with quantity 1. Availability is a caller concern.
func (s *Store) AddToCart(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{MenuItem: item, Quantity: 1})
}

// UpdateQuantity sets a line's quantity; zero removes the line so the cart
// never holds a zero-quantity entry. Unknown ids are no-ops.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID != id {
			continue
		}
		if quantity == 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = quantity
		}
		return nil
	}
	return nil
}

func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

func (s *Store) SetSpecialInstructions(id, instructions string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].SpecialInstructions = instructions
			return
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartTotal(s.cart)
}
