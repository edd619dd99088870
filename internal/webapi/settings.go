package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

func (s *WebServer) getSettings(c echo.Context) error {
	settings := s.pos.LoadSettings()
	// the digest never leaves the store boundary
	settings.AdminPin = ""
	return ok(c, settings)
}

func (s *WebServer) saveSettings(c echo.Context) error {
	var settings domain.Settings
	if err := c.Bind(&settings); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}
	if settings.GstPercentage < 0 || settings.GstPercentage > 100 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "GST percentage must be between 0 and 100", nil)
	}
	if settings.AdminPin == "" {
		// keep the stored digest when the screen submits without a new PIN
		settings.AdminPin = s.pos.LoadSettings().AdminPin
	}
	if !s.pos.SaveSettings(settings) {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save settings", nil)
	}
	saved := s.pos.LoadSettings()
	saved.AdminPin = ""
	return ok(c, saved)
}
