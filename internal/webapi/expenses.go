package webapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

func (s *WebServer) listExpenses(c echo.Context) error {
	return ok(c, s.pos.ListExpensesByRange(rangeParam(c)))
}

func (s *WebServer) addExpense(c echo.Context) error {
	var exp domain.Expense
	if err := c.Bind(&exp); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse expense", err.Error())
	}
	if strings.TrimSpace(exp.Category) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Category is required", nil)
	}
	if exp.Amount < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Amount must be >= 0", nil)
	}
	if !s.pos.AddExpense(exp) {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save expense", nil)
	}
	return ok(c, s.pos.LoadExpenses())
}

func (s *WebServer) removeExpense(c echo.Context) error {
	if !s.pos.RemoveExpense(c.Param("id")) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Expense not found", nil)
	}
	return ok(c, map[string]string{"id": c.Param("id")})
}
