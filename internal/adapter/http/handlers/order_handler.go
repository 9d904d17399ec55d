package handlers

import (
	"errors"
	"net/http"

	request "sobujigangas/internal/adapter/http/dto/request"
	response "sobujigangas/internal/adapter/http/dto/response"
	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase"
	"sobujigangas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for purchase orders, including the
// derived alert listing and the CSV export.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	items := make([]usecase.OrderItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, usecase.OrderItemInput{ProductID: it.ProductID, Quantidade: it.Quantidade})
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		PrazoEntregaDias:  payload.PrazoEntregaDias,
		Fornecedor:        payload.Fornecedor,
		ContatoFornecedor: payload.ContatoFornecedor,
		CreatedBy:         payload.CreatedBy,
		Items:             items,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders renders the classified order list. Query params codigo,
// data and status are case-insensitive substring filters ANDed together.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filters := usecase.ListOrderFilters{
		Codigo: c.Query("codigo"),
		Data:   c.Query("data"),
		Status: c.Query("status"),
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), filters)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClassifiedOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClassifiedOrder(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ReplaceItems(c *gin.Context) {
	var payload request.OrderItemsReplaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	items := make([]usecase.OrderItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, usecase.OrderItemInput{ProductID: it.ProductID, Quantidade: it.Quantidade})
	}

	order, err := h.usecase.ReplaceItems(c.Request.Context(), c.Param("id"), items)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportOrdersCSV streams the full order list as a CSV attachment.
func (h *OrderHandler) ExportOrdersCSV(c *gin.Context) {
	csv, err := h.usecase.ExportOrdersCSV(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pedidos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrNoOrderItems),
		errors.Is(err, usecase.ErrInvalidOrderItem),
		errors.Is(err, usecase.ErrInvalidDeliveryDays):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotEditable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_EDITABLE", "Order is outside its editable window", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotDeletable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_DELETABLE", "Order can no longer be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
