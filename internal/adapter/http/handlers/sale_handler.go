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
	errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid sale payload", http.StatusBadRequest)
)

// SaleHandler handles HTTP requests for the sales terminal.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// FinalizeSale closes a cart: checks stock, optionally charges the
// payment gateway and persists the sale with its movements.
func (h *SaleHandler) FinalizeSale(c *gin.Context) {
	var payload request.SaleFinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	items := make([]usecase.SaleItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, usecase.SaleItemInput{ProductID: it.ProductID, Quantidade: it.Quantidade})
	}

	result, err := h.usecase.FinalizeSale(c.Request.Context(), usecase.FinalizeSaleInput{
		CreatedBy:      payload.CreatedBy,
		Items:          items,
		PaymentPayload: payload.MPPayload,
	})
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSaleResult(result))
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.usecase.ListSales(c.Request.Context())
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSales(sales))
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidSaleItem),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
