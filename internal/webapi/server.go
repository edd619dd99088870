// Package webapi exposes the domain accessor boundary to the screens over
// a local HTTP surface, plus backup download/restore. It is glue over
// internal/pos and internal/backup; no storage logic lives here.
package webapi

import (
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/config"
	"github.com/fizanhabeeb/gracepos/internal/backup"
	"github.com/fizanhabeeb/gracepos/internal/pos"
	"github.com/fizanhabeeb/gracepos/internal/store"
)

type WebServer struct {
	cfg    *config.AppConfig
	pos    *pos.Store
	engine *backup.Engine
	root   *echo.Echo
}

func NewWebServer(cfg *config.AppConfig, p *pos.Store, engine *backup.Engine) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &WebServer{cfg: cfg, pos: p, engine: engine, root: e}
	s.initRouter()
	return s
}

func (s *WebServer) initRouter() {
	s.root.POST("/api/auth/login", s.login)

	api := s.root.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.cfg.Web.Secret),
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/auth/login"
		},
	}))

	api.GET("/menu", s.listMenu)
	api.PUT("/menu", s.saveMenu)
	api.GET("/categories", s.listCategories)
	api.PUT("/categories", s.saveCategories)
	api.DELETE("/categories/:name", s.removeCategory)

	api.GET("/settings", s.getSettings)
	api.PUT("/settings", s.saveSettings)

	api.GET("/order/current", s.getCurrentOrder)
	api.PUT("/order/current", s.saveCurrentOrder)
	api.DELETE("/order/current", s.clearCurrentOrder)
	api.POST("/order/current/lines", s.addCurrentOrderLine)
	api.DELETE("/order/current/lines", s.decrementCurrentOrderLine)
	api.POST("/order/complete", s.completeOrder)

	api.GET("/orders", s.listOrders)
	api.DELETE("/orders/:id", s.removeOrder)
	api.DELETE("/orders", s.clearOrders)
	api.GET("/sales/today", s.todaysSales)
	api.GET("/reports/sales", s.salesReport)
	api.GET("/reports/orders.csv", s.ordersCSV)
	api.GET("/reports/expenses.csv", s.expensesCSV)
	api.GET("/reports/sales.xlsx", s.salesXLSX)

	api.GET("/expenses", s.listExpenses)
	api.POST("/expenses", s.addExpense)
	api.DELETE("/expenses/:id", s.removeExpense)

	api.GET("/backup", s.downloadBackup)
	api.POST("/backup/restore", s.restoreBackup)
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.S().Infof("webapi listening on %s", addr)
	return s.root.Start(addr)
}

// Response helpers shared by every handler.

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func rangeParam(c echo.Context) store.Range {
	if r := store.Range(c.QueryParam("range")); r != "" {
		return r
	}
	return store.RangeAll
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}
