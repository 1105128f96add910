package router

import (
	"database/sql"

	"github.com/HARRSHA-G/desk/internal/handlers"
	"github.com/HARRSHA-G/desk/internal/repositories"
	"github.com/HARRSHA-G/desk/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	sequenceRepo := repositories.NewSequenceRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)

	// Initialize Services
	bookingService := services.NewBookingService(bookingRepo, sequenceRepo, db)
	receiptService := services.NewReceiptService(receiptRepo, bookingRepo, saleRepo, sequenceRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, db)
	saleService := services.NewSaleService(saleRepo, inventoryRepo, sequenceRepo, db)
	expenseService := services.NewExpenseService(expenseRepo)
	reportService := services.NewReportService(bookingRepo, receiptRepo, saleRepo, expenseRepo, snapshotRepo)

	// Initialize Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	saleHandler := handlers.NewSaleHandler(saleService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupBookingRoutes(apiV1, bookingHandler)
		SetupReceiptRoutes(apiV1, receiptHandler)
		SetupInventoryRoutes(apiV1, inventoryHandler)
		SetupSaleRoutes(apiV1, saleHandler)
		SetupExpenseRoutes(apiV1, expenseHandler)
		SetupReportRoutes(apiV1, reportHandler)
	}
}
