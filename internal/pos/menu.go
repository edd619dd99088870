package pos

import (
	"strings"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

// LoadMenu returns the stored menu, empty when none exists yet.
func (s *Store) LoadMenu() []domain.MenuItem {
	items := []domain.MenuItem{}
	s.kv.Get(domain.KvMenuItems, &items)
	return items
}

// SaveMenu replaces the menu wholesale. Items and variants created by the
// screens arrive without identifiers; they are assigned here and never
// change afterwards.
func (s *Store) SaveMenu(items []domain.MenuItem) bool {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = common.UUID()
		}
		if !items[i].HasVariants {
			items[i].Variants = nil
			continue
		}
		for j := range items[i].Variants {
			if items[i].Variants[j].ID == "" {
				items[i].Variants[j].ID = common.UUID()
			}
		}
	}
	return s.kv.Set(domain.KvMenuItems, items)
}

// GetDefaultCategories is the category set a fresh install starts with.
func (s *Store) GetDefaultCategories() []string {
	return []string{domain.ReservedCategory, "Breakfast", "Lunch", "Dinner", "Beverages"}
}

// LoadCategories returns the category names with the reserved "All" entry
// guaranteed first.
func (s *Store) LoadCategories() []string {
	var names []string
	if !s.kv.Get(domain.KvCategories, &names) || len(names) == 0 {
		return s.GetDefaultCategories()
	}
	return ensureReserved(names)
}

// SaveCategories replaces the set, deduplicating and re-inserting the
// reserved entry if a caller dropped it.
func (s *Store) SaveCategories(names []string) bool {
	return s.kv.Set(domain.KvCategories, ensureReserved(names))
}

// RemoveCategory deletes one category. Removing "All" is a no-op reported
// as failure; resetting a UI filter selection that pointed at the removed
// category is the caller's concern, not the store's.
func (s *Store) RemoveCategory(name string) bool {
	if strings.EqualFold(name, domain.ReservedCategory) {
		return false
	}
	names := s.LoadCategories()
	kept := names[:0]
	removed := false
	for _, n := range names {
		if n == name {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if !removed {
		return false
	}
	return s.kv.Set(domain.KvCategories, kept)
}

func ensureReserved(names []string) []string {
	out := []string{domain.ReservedCategory}
	seen := map[string]bool{domain.ReservedCategory: true}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
