// Package pos holds the typed domain accessors the screens consume. Every
// accessor converts storage failures into defaults or a boolean result;
// nothing here panics or surfaces an engine error to the UI.
package pos

import (
	"gorm.io/gorm"

	"github.com/fizanhabeeb/gracepos/internal/store"
)

type Store struct {
	db       *gorm.DB
	kv       *store.KvStore
	orders   *store.OrderStore
	expenses *store.ExpenseStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		kv:       store.NewKvStore(db),
		orders:   store.NewOrderStore(db),
		expenses: store.NewExpenseStore(db),
	}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Kv() *store.KvStore {
	return s.kv
}

func (s *Store) Orders() *store.OrderStore {
	return s.orders
}

func (s *Store) Expenses() *store.ExpenseStore {
	return s.expenses
}
