package store

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

// OrderStore persists completed bills. Each row carries the indexed
// summary columns plus the full serialized record, so filtered listing
// never deserializes more than it returns.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Insert upserts by identifier. Replaying the same record (a migration
// retry, a restore) overwrites instead of duplicating.
func (s *OrderStore) Insert(order domain.HistoryOrder) error {
	text, err := json.MarshalToString(order)
	if err != nil {
		return err
	}
	row := domain.PosOrder{
		ID:         order.ID,
		BillNumber: order.BillNumber,
		DateText:   order.Date,
		Timestamp:  order.Timestamp,
		GrandTotal: order.GrandTotal,
		Data:       text,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
}

// ListAll returns every order, newest first. Rows whose payload no longer
// parses are skipped rather than failing the whole listing.
func (s *OrderStore) ListAll() ([]domain.HistoryOrder, error) {
	var rows []domain.PosOrder
	if err := s.db.Order("timestamp DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return decodeOrders(rows), nil
}

// ListRange returns orders with from <= timestamp < to, newest first.
func (s *OrderStore) ListRange(from, to int64) ([]domain.HistoryOrder, error) {
	var rows []domain.PosOrder
	err := s.db.Where("timestamp >= ? AND timestamp < ?", from, to).
		Order("timestamp DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return decodeOrders(rows), nil
}

// SumRange totals grand_total over [from, to) without touching payloads.
func (s *OrderStore) SumRange(from, to int64) (count int64, total float64, err error) {
	type agg struct {
		Count int64
		Total float64
	}
	var a agg
	err = s.db.Model(&domain.PosOrder{}).
		Select("COUNT(*) as count, COALESCE(SUM(grand_total),0) as total").
		Where("timestamp >= ? AND timestamp < ?", from, to).
		Scan(&a).Error
	return a.Count, a.Total, err
}

// Remove deletes exactly one order; a missing identifier reports false.
func (s *OrderStore) Remove(id string) bool {
	res := s.db.Where("id = ?", id).Delete(&domain.PosOrder{})
	if res.Error != nil {
		zap.S().Errorf("order remove %s failed: %s", id, res.Error.Error())
		return false
	}
	return res.RowsAffected > 0
}

// Clear drops the whole collection (bulk history reset).
func (s *OrderStore) Clear() error {
	return s.db.Where("1 = 1").Delete(&domain.PosOrder{}).Error
}

func (s *OrderStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&domain.PosOrder{}).Count(&count).Error
	return count, err
}

func decodeOrders(rows []domain.PosOrder) []domain.HistoryOrder {
	out := make([]domain.HistoryOrder, 0, len(rows))
	for _, row := range rows {
		var order domain.HistoryOrder
		if err := json.UnmarshalFromString(row.Data, &order); err != nil {
			zap.S().Warnf("order row %s is corrupt, skipped: %s", row.ID, err.Error())
			continue
		}
		out = append(out, order)
	}
	return out
}

// ExpenseStore persists expense records with the same summary-beside-
// payload layout as OrderStore.
type ExpenseStore struct {
	db *gorm.DB
}

func NewExpenseStore(db *gorm.DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

func (s *ExpenseStore) Insert(exp domain.Expense) error {
	text, err := json.MarshalToString(exp)
	if err != nil {
		return err
	}
	row := domain.PosExpense{
		ID:        exp.ID,
		Category:  exp.Category,
		DateText:  exp.Date,
		Timestamp: exp.Timestamp,
		Amount:    exp.Amount,
		Data:      text,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
}

func (s *ExpenseStore) ListAll() ([]domain.Expense, error) {
	var rows []domain.PosExpense
	if err := s.db.Order("timestamp DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return decodeExpenses(rows), nil
}

func (s *ExpenseStore) ListRange(from, to int64) ([]domain.Expense, error) {
	var rows []domain.PosExpense
	err := s.db.Where("timestamp >= ? AND timestamp < ?", from, to).
		Order("timestamp DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return decodeExpenses(rows), nil
}

func (s *ExpenseStore) Remove(id string) bool {
	res := s.db.Where("id = ?", id).Delete(&domain.PosExpense{})
	if res.Error != nil {
		zap.S().Errorf("expense remove %s failed: %s", id, res.Error.Error())
		return false
	}
	return res.RowsAffected > 0
}

func (s *ExpenseStore) Clear() error {
	return s.db.Where("1 = 1").Delete(&domain.PosExpense{}).Error
}

func decodeExpenses(rows []domain.PosExpense) []domain.Expense {
	out := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		var exp domain.Expense
		if err := json.UnmarshalFromString(row.Data, &exp); err != nil {
			zap.S().Warnf("expense row %s is corrupt, skipped: %s", row.ID, err.Error())
			continue
		}
		out = append(out, exp)
	}
	return out
}

// AuditLog appends an operator-visible action record; failures are logged
// and swallowed, auditing never blocks the action itself.
func AuditLog(db *gorm.DB, action, detail string) {
	err := db.Create(&domain.PosAuditLog{
		ID:      common.UUIDint64(),
		Action:  action,
		Detail:  detail,
		OptTime: time.Now(),
	}).Error
	if err != nil {
		zap.S().Debugf("audit log write failed: %s", err.Error())
	}
}
