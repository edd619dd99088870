package pos

import (
	"time"

	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/store"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

// LoadExpenses returns every expense, newest first.
func (s *Store) LoadExpenses() []domain.Expense {
	expenses, err := s.expenses.ListAll()
	if err != nil {
		zap.S().Errorf("expenses read failed: %s", err.Error())
		return []domain.Expense{}
	}
	return expenses
}

// AddExpense persists one expense, assigning identifier and timestamps
// for records created on this device.
func (s *Store) AddExpense(exp domain.Expense) bool {
	if exp.Amount < 0 {
		return false
	}
	if exp.ID == "" {
		exp.ID = common.UUID()
	}
	if exp.Timestamp == 0 {
		exp.Timestamp = time.Now().UnixMilli()
	}
	if exp.Date == "" {
		exp.Date = common.FormatDateTime(time.UnixMilli(exp.Timestamp))
	}
	if err := s.expenses.Insert(exp); err != nil {
		zap.S().Errorf("expense insert %s failed: %s", exp.ID, err.Error())
		return false
	}
	return true
}

func (s *Store) RemoveExpense(id string) bool {
	return s.expenses.Remove(id)
}

// ListExpensesByRange filters on the indexed timestamp column.
func (s *Store) ListExpensesByRange(r store.Range) []domain.Expense {
	from, to, bounded := r.Bounds(time.Now())
	if !bounded {
		return s.LoadExpenses()
	}
	expenses, err := s.expenses.ListRange(from, to)
	if err != nil {
		zap.S().Errorf("expense range read failed: %s", err.Error())
		return []domain.Expense{}
	}
	return expenses
}
