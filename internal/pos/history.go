package pos

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/store"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

// BillDetails carries the optional customer fields collected on the bill
// screen when an order is completed.
type BillDetails struct {
	CustomerName string
	TableNumber  string
	PhoneNumber  string
	PaymentMode  string
}

// CompleteOrder turns the current cart into an immutable HistoryOrder:
// snapshots the lines, computes the totals once, stamps a bill number from
// the persisted sequence and clears the cart. Returns nil when the cart is
// empty or persisting fails.
func (s *Store) CompleteOrder(details BillDetails) *domain.HistoryOrder {
	lines := s.LoadCurrentOrder()
	if len(lines) == 0 {
		return nil
	}

	settings := s.LoadSettings()
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	var gst float64
	if settings.GstEnabled {
		gst = round2(subtotal * settings.GstPercentage / 100)
	}

	billNumber, err := s.kv.NextSequence(domain.KvBillSequence)
	if err != nil {
		zap.S().Errorf("bill sequence failed: %s", err.Error())
		return nil
	}

	now := time.Now()
	order := domain.HistoryOrder{
		ID:            common.UUID(),
		BillNumber:    billNumber,
		Items:         lines,
		CustomerName:  details.CustomerName,
		TableNumber:   details.TableNumber,
		PhoneNumber:   details.PhoneNumber,
		Subtotal:      round2(subtotal),
		Gst:           gst,
		GrandTotal:    round2(subtotal + gst),
		GstEnabled:    settings.GstEnabled,
		GstPercentage: settings.GstPercentage,
		PaymentMode:   normalizePaymentMode(details.PaymentMode),
		Date:          common.FormatDateTime(now),
		Timestamp:     now.UnixMilli(),
	}

	if !s.SaveOrderToHistory(order) {
		return nil
	}
	s.ClearCurrentOrder()
	store.AuditLog(s.db, "order_completed",
		fmt.Sprintf("bill #%d total %.2f", order.BillNumber, order.GrandTotal))
	return &order
}

// SaveOrderToHistory persists one completed bill. Records arriving from a
// restore or migration keep their identifiers and timestamps.
func (s *Store) SaveOrderToHistory(order domain.HistoryOrder) bool {
	if order.ID == "" {
		order.ID = common.UUID()
	}
	if order.Timestamp == 0 {
		order.Timestamp = time.Now().UnixMilli()
	}
	if order.Date == "" {
		order.Date = common.FormatDateTime(time.UnixMilli(order.Timestamp))
	}
	if order.PaymentMode == "" {
		order.PaymentMode = domain.PaymentCash
	}
	if err := s.orders.Insert(order); err != nil {
		zap.S().Errorf("order insert %s failed: %s", order.ID, err.Error())
		return false
	}
	return true
}

// LoadOrderHistory returns every completed bill, newest first.
func (s *Store) LoadOrderHistory() []domain.HistoryOrder {
	orders, err := s.orders.ListAll()
	if err != nil {
		zap.S().Errorf("order history read failed: %s", err.Error())
		return []domain.HistoryOrder{}
	}
	return orders
}

// ListOrdersByRange filters history on the indexed timestamp column.
func (s *Store) ListOrdersByRange(r store.Range) []domain.HistoryOrder {
	from, to, bounded := r.Bounds(time.Now())
	if !bounded {
		return s.LoadOrderHistory()
	}
	orders, err := s.orders.ListRange(from, to)
	if err != nil {
		zap.S().Errorf("order range read failed: %s", err.Error())
		return []domain.HistoryOrder{}
	}
	return orders
}

func (s *Store) RemoveOrderFromHistory(id string) bool {
	return s.orders.Remove(id)
}

func (s *Store) ClearOrderHistory() bool {
	if err := s.orders.Clear(); err != nil {
		zap.S().Errorf("order history clear failed: %s", err.Error())
		return false
	}
	store.AuditLog(s.db, "history_cleared", "all orders removed")
	return true
}

// SalesSummary is what the dashboard tile shows for a day.
type SalesSummary struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// GetTodaysSales aggregates same-calendar-day orders from the summary
// columns without deserializing any record.
func (s *Store) GetTodaysSales() SalesSummary {
	from, to, _ := store.RangeToday.Bounds(time.Now())
	count, total, err := s.orders.SumRange(from, to)
	if err != nil {
		zap.S().Errorf("todays sales read failed: %s", err.Error())
		return SalesSummary{}
	}
	return SalesSummary{Count: count, Total: round2(total)}
}

func normalizePaymentMode(mode string) string {
	switch mode {
	case domain.PaymentUPI, domain.PaymentCard:
		return mode
	default:
		return domain.PaymentCash
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
