package reports

import (
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

const sheetName = "Sheet1"

// WriteSalesXLSX writes an order-history workbook with a summary block on
// top, for owners who want the numbers in a spreadsheet.
func WriteSalesXLSX(path string, orders []domain.HistoryOrder, expenses []domain.Expense) error {
	report := BuildSalesReport(orders, expenses)

	xlsx := excelize.NewFile()
	xlsx.SetCellValue(sheetName, "A1", "Orders")
	xlsx.SetCellValue(sheetName, "B1", report.OrderCount)
	xlsx.SetCellValue(sheetName, "A2", "Revenue")
	xlsx.SetCellValue(sheetName, "B2", report.Revenue)
	xlsx.SetCellValue(sheetName, "A3", "GST collected")
	xlsx.SetCellValue(sheetName, "B3", report.GstCollected)
	xlsx.SetCellValue(sheetName, "A4", "Expenses")
	xlsx.SetCellValue(sheetName, "B4", report.ExpenseTotal)
	xlsx.SetCellValue(sheetName, "A5", "Net")
	xlsx.SetCellValue(sheetName, "B5", report.NetAfterSpend)

	headers := []string{"Bill No", "Date", "Customer", "Table", "Subtotal", "GST", "Grand Total", "Payment"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c7", 'A'+i)
		xlsx.SetCellValue(sheetName, cell, h)
	}
	for i, order := range orders {
		row := 8 + i
		xlsx.SetCellValue(sheetName, fmt.Sprintf("A%d", row), order.BillNumber)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("B%d", row), order.Date)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("C%d", row), order.CustomerName)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("D%d", row), order.TableNumber)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("E%d", row), order.Subtotal)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("F%d", row), order.Gst)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("G%d", row), order.GrandTotal)
		xlsx.SetCellValue(sheetName, fmt.Sprintf("H%d", row), order.PaymentMode)
	}

	if err := xlsx.SaveAs(path); err != nil {
		return errors.Wrap(err, "write xlsx report")
	}
	return nil
}
