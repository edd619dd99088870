package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

func testOrder(id string, bill int64, ts time.Time, total float64) domain.HistoryOrder {
	return domain.HistoryOrder{
		ID:         id,
		BillNumber: bill,
		Items: []domain.OrderLine{
			{ItemID: "m1", Name: "Idli", Price: total, Quantity: 1},
		},
		Subtotal:    total,
		GrandTotal:  total,
		PaymentMode: domain.PaymentCash,
		Date:        ts.Format("2006-01-02 15:04:05"),
		Timestamp:   ts.UnixMilli(),
	}
}

func TestOrderInsertIsUpsert(t *testing.T) {
	orders := NewOrderStore(newTestDB(t))
	now := time.Now()

	require.NoError(t, orders.Insert(testOrder("o1", 1, now, 100)))
	// replaying the same identifier must replace, not duplicate
	require.NoError(t, orders.Insert(testOrder("o1", 1, now, 150)))

	got, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 150.0, got[0].GrandTotal)
}

func TestOrderRemove(t *testing.T) {
	orders := NewOrderStore(newTestDB(t))

	require.NoError(t, orders.Insert(testOrder("o1", 1, time.Now(), 100)))
	assert.True(t, orders.Remove("o1"))
	assert.False(t, orders.Remove("o1"), "removing a missing id reports false")

	got, err := orders.ListAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderClear(t *testing.T) {
	orders := NewOrderStore(newTestDB(t))
	now := time.Now()

	require.NoError(t, orders.Insert(testOrder("o1", 1, now, 100)))
	require.NoError(t, orders.Insert(testOrder("o2", 2, now, 200)))
	require.NoError(t, orders.Clear())

	count, err := orders.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderListRangeUsesTimestampColumn(t *testing.T) {
	orders := NewOrderStore(newTestDB(t))
	now := time.Now()

	require.NoError(t, orders.Insert(testOrder("new", 1, now, 100)))
	old := testOrder("old", 2, now.AddDate(0, 0, -8), 50)
	// a legacy-style display date must not influence filtering
	old.Date = "13/07/2024, 9:15 pm"
	require.NoError(t, orders.Insert(old))

	from, to, bounded := RangeToday.Bounds(now)
	require.True(t, bounded)
	got, err := orders.ListRange(from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestOrderSumRange(t *testing.T) {
	orders := NewOrderStore(newTestDB(t))
	now := time.Now()

	require.NoError(t, orders.Insert(testOrder("o1", 1, now, 100)))
	require.NoError(t, orders.Insert(testOrder("o2", 2, now, 60)))
	require.NoError(t, orders.Insert(testOrder("o3", 3, now.AddDate(0, 0, -30), 999)))

	from, to, _ := RangeToday.Bounds(now)
	count, total, err := orders.SumRange(from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 160.0, total)
}

func TestExpenseStoreLifecycle(t *testing.T) {
	expenses := NewExpenseStore(newTestDB(t))
	now := time.Now()

	require.NoError(t, expenses.Insert(domain.Expense{
		ID: "e1", Category: "Vegetables", Amount: 250, Timestamp: now.UnixMilli(),
	}))
	require.NoError(t, expenses.Insert(domain.Expense{
		ID: "e1", Category: "Vegetables", Amount: 300, Timestamp: now.UnixMilli(),
	}))

	got, err := expenses.ListAll()
	require.NoError(t, err)
	require.Len(t, got, 1, "insert by same id replaces")
	assert.Equal(t, 300.0, got[0].Amount)

	assert.True(t, expenses.Remove("e1"))
	assert.False(t, expenses.Remove("e1"))
}

func TestAuditLogWritesDistinctRows(t *testing.T) {
	db := newTestDB(t)

	AuditLog(db, "order_completed", "bill #1")
	AuditLog(db, "order_completed", "bill #2")

	var rows []domain.PosAuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 2, "every action keeps its own row")
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.NotZero(t, rows[0].ID)
}

func TestRangeBounds(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	from, to, bounded := RangeToday.Bounds(now)
	require.True(t, bounded)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC).UnixMilli(), from)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC).UnixMilli(), to)

	from, _, bounded = RangeWeek.Bounds(now)
	require.True(t, bounded)
	eightDaysAgo := now.AddDate(0, 0, -8).UnixMilli()
	assert.LessOrEqual(t, from, eightDaysAgo, "week window reaches an order from eight days ago")

	_, _, bounded = RangeAll.Bounds(now)
	assert.False(t, bounded)
}
