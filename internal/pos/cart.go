package pos

import (
	"github.com/fizanhabeeb/gracepos/internal/domain"
)

// LoadCurrentOrder returns the in-progress order, empty when none.
func (s *Store) LoadCurrentOrder() []domain.OrderLine {
	lines := []domain.OrderLine{}
	s.kv.Get(domain.KvCurrentOrder, &lines)
	return lines
}

// SaveCurrentOrder replaces the singleton cart wholesale.
func (s *Store) SaveCurrentOrder(lines []domain.OrderLine) bool {
	return s.kv.Set(domain.KvCurrentOrder, lines)
}

func (s *Store) ClearCurrentOrder() bool {
	return s.kv.Set(domain.KvCurrentOrder, []domain.OrderLine{})
}

// AddToCurrentOrder puts one unit of item (or one of its variants) into
// the cart. Item id plus resolved name is the line key: adding the same
// combination again increments the existing line instead of duplicating
// it. Price is snapshotted at add time.
func (s *Store) AddToCurrentOrder(item domain.MenuItem, variant *domain.Variant) bool {
	name := item.Name
	price := item.Price
	if variant != nil {
		name = item.Name + " (" + variant.Name + ")"
		price = variant.Price
	}

	lines := s.LoadCurrentOrder()
	for i := range lines {
		if lines[i].ItemID == item.ID && lines[i].Name == name {
			lines[i].Quantity++
			return s.SaveCurrentOrder(lines)
		}
	}
	lines = append(lines, domain.OrderLine{
		ItemID:   item.ID,
		Name:     name,
		Price:    price,
		Quantity: 1,
		Image:    item.Image,
	})
	return s.SaveCurrentOrder(lines)
}

// DecrementCurrentOrderLine lowers a line's quantity by one; a line never
// sits at zero, it is removed instead.
func (s *Store) DecrementCurrentOrderLine(itemID, name string) bool {
	lines := s.LoadCurrentOrder()
	for i := range lines {
		if lines[i].ItemID != itemID || lines[i].Name != name {
			continue
		}
		if lines[i].Quantity > 1 {
			lines[i].Quantity--
		} else {
			lines = append(lines[:i], lines[i+1:]...)
		}
		return s.SaveCurrentOrder(lines)
	}
	return false
}

// RemoveCurrentOrderLine drops a whole line regardless of quantity.
func (s *Store) RemoveCurrentOrderLine(itemID, name string) bool {
	lines := s.LoadCurrentOrder()
	for i := range lines {
		if lines[i].ItemID == itemID && lines[i].Name == name {
			lines = append(lines[:i], lines[i+1:]...)
			return s.SaveCurrentOrder(lines)
		}
	}
	return false
}
