package handlers

import (
	"net/http"

	"sobujigangas/internal/usecase"
	"sobujigangas/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the dashboard chart series.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

func (h *AnalyticsHandler) MonthlySales(c *gin.Context) {
	points, err := h.usecase.MonthlySales(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, points)
}

// StockMovements accepts an optional product_id query to narrow the
// series to a single product.
func (h *AnalyticsHandler) StockMovements(c *gin.Context) {
	points, err := h.usecase.StockMovements(c.Request.Context(), c.Query("product_id"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, points)
}
