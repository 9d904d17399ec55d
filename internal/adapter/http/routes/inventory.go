package routes

import (
	"sobujigangas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/pedidos"
	PathProducts = "/produtos"
	PathAlerts   = "/alertas"
	PathSales    = "/vendas"
	PathUsers    = "/usuarios"
	PathReset    = "/recuperacao-senha"
	PathReports  = "/relatorios"
)

func addInventoryRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	productHandler *handlers.ProductHandler,
	alertHandler *handlers.StockAlertHandler,
	saleHandler *handlers.SaleHandler,
	userHandler *handlers.UserHandler,
	resetHandler *handlers.PasswordResetHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/export", orderHandler.ExportOrdersCSV)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PUT("/:id/items", orderHandler.ReplaceItems)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.POST("/:id/restock", productHandler.RestockProduct)
	}

	alerts := rg.Group(PathAlerts)
	{
		alerts.GET("", alertHandler.ListAlertedProducts)
		alerts.PUT("/:product_id", alertHandler.SaveAlertRanges)
	}

	sales := rg.Group(PathSales)
	{
		sales.POST("", saleHandler.FinalizeSale)
		sales.GET("", saleHandler.ListSales)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.PATCH("/:id/permissoes", userHandler.SetPermissions)
	}

	reset := rg.Group(PathReset)
	{
		reset.POST("/enviar", resetHandler.SendResetCode)
		reset.POST("/verificar", resetHandler.VerifyResetCode)
		reset.POST("/redefinir", resetHandler.ResetPassword)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/vendas-mensais", analyticsHandler.MonthlySales)
		reports.GET("/movimentacao-estoque", analyticsHandler.StockMovements)
	}
}
