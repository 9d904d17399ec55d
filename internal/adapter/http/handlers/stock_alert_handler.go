package handlers

import (
	"errors"
	"net/http"

	request "sobujigangas/internal/adapter/http/dto/request"
	response "sobujigangas/internal/adapter/http/dto/response"
	"sobujigangas/internal/usecase"
	"sobujigangas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAlertPayload = pkg.NewDomainErrorSimple("INVALID_ALERT_INPUT", "Invalid stock alert payload", http.StatusBadRequest)
)

// StockAlertHandler handles HTTP requests for the color-coded stock
// alerts screen.

type StockAlertHandler struct {
	usecase usecase.IStockAlertUseCase
}

func NewStockAlertHandler(uc usecase.IStockAlertUseCase) *StockAlertHandler {
	return &StockAlertHandler{usecase: uc}
}

// ListAlertedProducts lists every product currently in the vermelho or
// amarelo band, optionally filtered by a search query.
func (h *StockAlertHandler) ListAlertedProducts(c *gin.Context) {
	products, err := h.usecase.ListAlertedProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapStockAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAlertedProducts(products))
}

func (h *StockAlertHandler) SaveAlertRanges(c *gin.Context) {
	var payload request.StockAlertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAlertPayload.HTTPStatus, errInvalidAlertPayload.ToHTTPError())
		return
	}

	alert, err := h.usecase.SaveAlertRanges(c.Request.Context(), c.Param("product_id"), usecase.AlertRangesInput{
		NivelVerdeMin:    payload.NivelVerdeMin,
		NivelVerdeMax:    payload.NivelVerdeMax,
		NivelAmareloMin:  payload.NivelAmareloMin,
		NivelAmareloMax:  payload.NivelAmareloMax,
		NivelVermelhoMax: payload.NivelVermelhoMax,
	})
	if err != nil {
		appErr := mapStockAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockAlert(alert))
}

func mapStockAlertError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidAlertRanges):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
