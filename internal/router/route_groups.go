package router

import (
	"github.com/HARRSHA-G/desk/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up the irumudi booking routes.
func SetupBookingRoutes(apiGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookingRoutes := apiGroup.Group("/bookings")
	{
		bookingRoutes.POST("", bookingHandler.CreateBooking)
		bookingRoutes.GET("", bookingHandler.GetBookings)
		bookingRoutes.GET("/:code", bookingHandler.GetBooking)
		bookingRoutes.POST("/:code/payments", bookingHandler.RecordPayment)
	}
}

// SetupReceiptRoutes sets up the simple-stream receipt routes and the
// cross-stream document lookup.
func SetupReceiptRoutes(apiGroup *gin.RouterGroup, receiptHandler *handlers.ReceiptHandler) {
	streamRoutes := apiGroup.Group("/streams/:stream/receipts")
	{
		streamRoutes.POST("", receiptHandler.CreateReceipt)
		streamRoutes.GET("", receiptHandler.GetReceipts)
	}
	apiGroup.GET("/receipts/:code", receiptHandler.LookupDocument)
}

// SetupInventoryRoutes sets up the merchandise inventory routes.
func SetupInventoryRoutes(apiGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	itemRoutes := apiGroup.Group("/items")
	{
		itemRoutes.POST("", inventoryHandler.UpsertItem)
		itemRoutes.GET("", inventoryHandler.GetItems)
		itemRoutes.GET("/:name", inventoryHandler.GetItem)
	}
}

// SetupSaleRoutes sets up the merchandise sale routes.
func SetupSaleRoutes(apiGroup *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	saleRoutes := apiGroup.Group("/sales")
	{
		saleRoutes.POST("", saleHandler.CreateSale)
		saleRoutes.POST("/stock-check", saleHandler.CheckStock)
		saleRoutes.GET("/:code", saleHandler.GetSale)
	}
}

// SetupExpenseRoutes sets up the expense routes.
func SetupExpenseRoutes(apiGroup *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler) {
	expenseRoutes := apiGroup.Group("/expenses")
	{
		expenseRoutes.POST("", expenseHandler.CreateExpense)
		expenseRoutes.GET("", expenseHandler.GetExpenses)
	}
}

// SetupReportRoutes sets up the period report and snapshot routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reports")
	{
		reportRoutes.GET("", reportHandler.GetReport)
		reportRoutes.POST("/snapshots", reportHandler.SaveSnapshot)
		reportRoutes.GET("/snapshots", reportHandler.GetSnapshots)
	}
}
