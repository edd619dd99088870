package webapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

func (s *WebServer) listMenu(c echo.Context) error {
	items := s.pos.LoadMenu()
	// optional category filter; "All" means no filter
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" && cat != domain.ReservedCategory {
		filtered := make([]domain.MenuItem, 0, len(items))
		for _, item := range items {
			if item.Category == cat {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	return ok(c, items)
}

func (s *WebServer) saveMenu(c echo.Context) error {
	var items []domain.MenuItem
	if err := c.Bind(&items); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse menu", err.Error())
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Item name is required", nil)
		}
		if item.Price < 0 {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Item price must be >= 0", nil)
		}
		for _, v := range item.Variants {
			if v.Price < 0 {
				return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Variant price must be >= 0", nil)
			}
		}
	}
	if !s.pos.SaveMenu(items) {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save menu", nil)
	}
	return ok(c, s.pos.LoadMenu())
}

func (s *WebServer) listCategories(c echo.Context) error {
	return ok(c, s.pos.LoadCategories())
}

func (s *WebServer) saveCategories(c echo.Context) error {
	var names []string
	if err := c.Bind(&names); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse categories", err.Error())
	}
	if !s.pos.SaveCategories(names) {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save categories", nil)
	}
	return ok(c, s.pos.LoadCategories())
}

func (s *WebServer) removeCategory(c echo.Context) error {
	name := c.Param("name")
	if strings.EqualFold(name, domain.ReservedCategory) {
		return fail(c, http.StatusBadRequest, "RESERVED_CATEGORY", "The All category cannot be removed", nil)
	}
	if !s.pos.RemoveCategory(name) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
	}
	return ok(c, s.pos.LoadCategories())
}
