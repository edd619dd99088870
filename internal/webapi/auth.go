package webapi

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

type loginPayload struct {
	Pin string `json:"pin"`
}

// login verifies the admin PIN against the stored salted digest and
// issues a session token. With the PIN gate disabled any login succeeds.
func (s *WebServer) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login", err.Error())
	}
	if !s.pos.VerifyPin(payload.Pin) {
		return fail(c, http.StatusUnauthorized, "INVALID_PIN", "PIN is incorrect", nil)
	}

	expiry := time.Duration(s.cfg.Web.JwtExpiry) * time.Minute
	if expiry <= 0 {
		expiry = 2 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err.Error())
	}
	return ok(c, map[string]string{"token": signed})
}
