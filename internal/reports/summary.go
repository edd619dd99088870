package reports

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

// SalesReport aggregates a set of completed bills and the expenses of the
// same window into the figures the reports screen shows.
type SalesReport struct {
	OrderCount    int     `json:"orderCount"`
	Revenue       float64 `json:"revenue"`
	GstCollected  float64 `json:"gstCollected"`
	MeanBill      float64 `json:"meanBill"`
	MedianBill    float64 `json:"medianBill"`
	ExpenseTotal  float64 `json:"expenseTotal"`
	NetAfterSpend float64 `json:"netAfterSpend"`
}

func BuildSalesReport(orders []domain.HistoryOrder, expenses []domain.Expense) SalesReport {
	report := SalesReport{OrderCount: len(orders)}

	totals := make([]float64, 0, len(orders))
	for _, order := range orders {
		report.Revenue += order.GrandTotal
		report.GstCollected += order.Gst
		totals = append(totals, order.GrandTotal)
	}
	for _, exp := range expenses {
		report.ExpenseTotal += exp.Amount
	}

	if len(totals) > 0 {
		mean, _ := stats.Mean(totals)
		median, _ := stats.Median(totals)
		report.MeanBill = round2(mean)
		report.MedianBill = round2(median)
	}
	report.Revenue = round2(report.Revenue)
	report.GstCollected = round2(report.GstCollected)
	report.ExpenseTotal = round2(report.ExpenseTotal)
	report.NetAfterSpend = round2(report.Revenue - report.ExpenseTotal)
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
