package webapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fizanhabeeb/gracepos/internal/backup"
	"github.com/fizanhabeeb/gracepos/internal/reports"
)

// downloadBackup hands the full snapshot to the platform share mechanism.
func (s *WebServer) downloadBackup(c echo.Context) error {
	doc := s.engine.CreateBackupObject()
	s.engine.UpdateLastBackupTimestamp()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="grace-backup.json"`)
	return c.JSON(http.StatusOK, doc)
}

// restoreBackup ingests a picked backup file. Validation happens before
// any store is touched; a failed restore reports which kind of failure so
// the screen can word the alert.
func (s *WebServer) restoreBackup(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read backup", err.Error())
	}
	if err := s.engine.RestoreFullBackup(data); err != nil {
		if errors.Is(err, backup.ErrInvalidFormat) {
			return fail(c, http.StatusBadRequest, "INVALID_FORMAT", "Invalid or corrupted backup file", nil)
		}
		return fail(c, http.StatusInternalServerError, "RESTORE_FAILED", "Restore failed, previous data kept where possible", nil)
	}
	return ok(c, map[string]string{"status": "restored"})
}

func (s *WebServer) salesReport(c echo.Context) error {
	r := rangeParam(c)
	report := reports.BuildSalesReport(s.pos.ListOrdersByRange(r), s.pos.ListExpensesByRange(r))
	return ok(c, report)
}

func (s *WebServer) ordersCSV(c echo.Context) error {
	text, err := reports.OrdersCSV(s.pos.ListOrdersByRange(rangeParam(c)))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "CSV export failed", err.Error())
	}
	return c.Blob(http.StatusOK, "text/csv", []byte(text))
}

func (s *WebServer) salesXLSX(c echo.Context) error {
	r := rangeParam(c)
	path := filepath.Join(os.TempDir(), fmt.Sprintf("grace-report-%d.xlsx", time.Now().UnixMilli()))
	err := reports.WriteSalesXLSX(path, s.pos.ListOrdersByRange(r), s.pos.ListExpensesByRange(r))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "XLSX export failed", err.Error())
	}
	defer os.Remove(path)
	return c.Attachment(path, "grace-sales-report.xlsx")
}

func (s *WebServer) expensesCSV(c echo.Context) error {
	text, err := reports.ExpensesCSV(s.pos.ListExpensesByRange(rangeParam(c)))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "CSV export failed", err.Error())
	}
	return c.Blob(http.StatusOK, "text/csv", []byte(text))
}
