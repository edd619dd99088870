package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

func TestBuildSalesReport(t *testing.T) {
	orders := []domain.HistoryOrder{
		{GrandTotal: 105, Gst: 5},
		{GrandTotal: 210, Gst: 10},
		{GrandTotal: 315, Gst: 15},
	}
	expenses := []domain.Expense{
		{Amount: 100},
		{Amount: 30},
	}

	report := BuildSalesReport(orders, expenses)
	assert.Equal(t, 3, report.OrderCount)
	assert.Equal(t, 630.0, report.Revenue)
	assert.Equal(t, 30.0, report.GstCollected)
	assert.Equal(t, 210.0, report.MeanBill)
	assert.Equal(t, 210.0, report.MedianBill)
	assert.Equal(t, 130.0, report.ExpenseTotal)
	assert.Equal(t, 500.0, report.NetAfterSpend)
}

func TestBuildSalesReportEmpty(t *testing.T) {
	report := BuildSalesReport(nil, nil)
	assert.Zero(t, report.OrderCount)
	assert.Zero(t, report.MeanBill)
	assert.Zero(t, report.MedianBill)
}

func TestOrdersCSV(t *testing.T) {
	out, err := OrdersCSV([]domain.HistoryOrder{{
		BillNumber:  12,
		Date:        "2026-08-28 13:00:00",
		Items:       []domain.OrderLine{{Quantity: 2}, {Quantity: 1}},
		Subtotal:    200,
		Gst:         10,
		GrandTotal:  210,
		PaymentMode: domain.PaymentUPI,
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "bill_no,date,customer,table,items,subtotal,gst,grand_total,payment", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "12,2026-08-28 13:00:00")
	assert.Contains(t, lines[1], ",3,") // quantities summed
	assert.Contains(t, lines[1], "UPI")
}

func TestExpensesCSV(t *testing.T) {
	out, err := ExpensesCSV([]domain.Expense{{
		Date:     "2026-08-28 09:00:00",
		Category: "Gas",
		Amount:   900,
	}})
	require.NoError(t, err)
	assert.Contains(t, out, "date,category,description,amount")
	assert.Contains(t, out, "Gas,")
	assert.Contains(t, out, "900")
}
