package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/pos"
)

func (s *WebServer) getCurrentOrder(c echo.Context) error {
	return ok(c, s.pos.LoadCurrentOrder())
}

func (s *WebServer) saveCurrentOrder(c echo.Context) error {
	var lines []domain.OrderLine
	if err := c.Bind(&lines); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order lines", err.Error())
	}
	if !s.pos.SaveCurrentOrder(lines) {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save current order", nil)
	}
	return ok(c, s.pos.LoadCurrentOrder())
}

func (s *WebServer) clearCurrentOrder(c echo.Context) error {
	if !s.pos.ClearCurrentOrder() {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear current order", nil)
	}
	return ok(c, []domain.OrderLine{})
}

type addLinePayload struct {
	Item      domain.MenuItem `json:"item"`
	VariantID string          `json:"variantId,omitempty"`
}

func (s *WebServer) addCurrentOrderLine(c echo.Context) error {
	var payload addLinePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse line", err.Error())
	}
	var variant *domain.Variant
	if payload.VariantID != "" {
		for i := range payload.Item.Variants {
			if payload.Item.Variants[i].ID == payload.VariantID {
				variant = &payload.Item.Variants[i]
				break
			}
		}
		if variant == nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown variant", nil)
		}
	}
	if !s.pos.AddToCurrentOrder(payload.Item, variant) {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update current order", nil)
	}
	return ok(c, s.pos.LoadCurrentOrder())
}

type lineKeyPayload struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
}

func (s *WebServer) decrementCurrentOrderLine(c echo.Context) error {
	var payload lineKeyPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse line key", err.Error())
	}
	if !s.pos.DecrementCurrentOrderLine(payload.ItemID, payload.Name) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "No such cart line", nil)
	}
	return ok(c, s.pos.LoadCurrentOrder())
}

type completeOrderPayload struct {
	CustomerName string `json:"customerName"`
	TableNumber  string `json:"tableNumber"`
	PhoneNumber  string `json:"phoneNumber"`
	PaymentMode  string `json:"paymentMode"`
}

func (s *WebServer) completeOrder(c echo.Context) error {
	var payload completeOrderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse bill details", err.Error())
	}
	order := s.pos.CompleteOrder(pos.BillDetails{
		CustomerName: payload.CustomerName,
		TableNumber:  payload.TableNumber,
		PhoneNumber:  payload.PhoneNumber,
		PaymentMode:  payload.PaymentMode,
	})
	if order == nil {
		return fail(c, http.StatusBadRequest, "EMPTY_ORDER", "Current order is empty or could not be saved", nil)
	}
	return ok(c, order)
}

func (s *WebServer) listOrders(c echo.Context) error {
	return ok(c, s.pos.ListOrdersByRange(rangeParam(c)))
}

func (s *WebServer) removeOrder(c echo.Context) error {
	if !s.pos.RemoveOrderFromHistory(c.Param("id")) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	return ok(c, map[string]string{"id": c.Param("id")})
}

func (s *WebServer) clearOrders(c echo.Context) error {
	if !s.pos.ClearOrderHistory() {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear history", nil)
	}
	return ok(c, []domain.HistoryOrder{})
}

func (s *WebServer) todaysSales(c echo.Context) error {
	return ok(c, s.pos.GetTodaysSales())
}
