package api

import (
	"fmt"

	"TraderPulse/internal/domain/models"
	"TraderPulse/internal/usecase"
	xhttp "TraderPulse/pkg/http"
	xlogger "TraderPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StocksHandler exposes the market data and sentiment endpoints.
type StocksHandler struct {
	logger  *xlogger.Logger
	agg     *usecase.StockAggregator
	appName string
}

func NewStocksHandler(l *xlogger.Logger, agg *usecase.StockAggregator, appName string) *StocksHandler {
	return &StocksHandler{logger: l, agg: agg, appName: appName}
}

func (h *StocksHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	g := e.Group("/api/v1")
	g.GET("/stocks/:symbol", h.GetStock)
	g.GET("/sentiment/:symbol", h.GetSentiment)
	g.GET("/gamification/status", h.GetGamificationStatus)
}

// Root returns the service banner.
func (h *StocksHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"message": fmt.Sprintf("%s is running", h.appName),
	})
}

// Health is the liveness probe.
func (h *StocksHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// GetStock returns the combined realtime quote and historical series.
func (h *StocksHandler) GetStock(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	view, err := h.agg.GetStockView(c.Request().Context(), req.Symbol)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view)
}

// GetSentiment returns the AI-derived sentiment judgment for a symbol.
// Analyzer degradation never reaches this mapping; it surfaces as a 200
// with the fallback content.
func (h *StocksHandler) GetSentiment(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.agg.GetSentiment(c.Request().Context(), req.Symbol)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, result)
}

// GetGamificationStatus returns the fixed demo gamification payload.
func (h *StocksHandler) GetGamificationStatus(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.DefaultGamificationStatus())
}
