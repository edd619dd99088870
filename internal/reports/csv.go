// Package reports renders order history and expenses into the export
// formats the owner shares out of the app: CSV, XLSX and an aggregate
// sales summary. Everything here reads through the domain accessors and
// mutates nothing.
package reports

import (
	"github.com/gocarina/gocsv"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

type orderCsvRow struct {
	BillNumber int64   `csv:"bill_no"`
	Date       string  `csv:"date"`
	Customer   string  `csv:"customer"`
	Table      string  `csv:"table"`
	Items      int     `csv:"items"`
	Subtotal   float64 `csv:"subtotal"`
	Gst        float64 `csv:"gst"`
	GrandTotal float64 `csv:"grand_total"`
	Payment    string  `csv:"payment"`
}

type expenseCsvRow struct {
	Date        string  `csv:"date"`
	Category    string  `csv:"category"`
	Description string  `csv:"description"`
	Amount      float64 `csv:"amount"`
}

// OrdersCSV renders completed bills as a comma-separated document.
func OrdersCSV(orders []domain.HistoryOrder) (string, error) {
	rows := make([]orderCsvRow, 0, len(orders))
	for _, order := range orders {
		var qty int
		for _, line := range order.Items {
			qty += line.Quantity
		}
		rows = append(rows, orderCsvRow{
			BillNumber: order.BillNumber,
			Date:       order.Date,
			Customer:   order.CustomerName,
			Table:      order.TableNumber,
			Items:      qty,
			Subtotal:   order.Subtotal,
			Gst:        order.Gst,
			GrandTotal: order.GrandTotal,
			Payment:    order.PaymentMode,
		})
	}
	return gocsv.MarshalString(&rows)
}

// ExpensesCSV renders expenses as a comma-separated document.
func ExpensesCSV(expenses []domain.Expense) (string, error) {
	rows := make([]expenseCsvRow, 0, len(expenses))
	for _, exp := range expenses {
		rows = append(rows, expenseCsvRow{
			Date:        exp.Date,
			Category:    exp.Category,
			Description: exp.Description,
			Amount:      exp.Amount,
		})
	}
	return gocsv.MarshalString(&rows)
}
