package handlers

import (
	"net/http"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SaleHandler holds the sale service.
type SaleHandler struct {
	saleService services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

// CreateSale handles a merchandise counter sale. Every line must clear
// its stock check or the whole sale is rejected.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSale: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	sale, err := h.saleService.SellItems(req)
	if err != nil {
		respondServiceError(c, err, "CreateSale: Error from saleService.SellItems")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// CheckStock handles an advisory pre-sale availability check.
func (h *SaleHandler) CheckStock(c *gin.Context) {
	var req struct {
		Lines []models.CartLine `json:"lines" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CheckStock: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	availability, err := h.saleService.CheckStock(req.Lines)
	if err != nil {
		respondServiceError(c, err, "CheckStock: Error from saleService.CheckStock")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": availability})
}

// GetSale handles fetching a single sale with its line items.
func (h *SaleHandler) GetSale(c *gin.Context) {
	receiptCode := c.Param("code")

	sale, err := h.saleService.GetSaleByReceiptCode(receiptCode)
	if err != nil {
		respondServiceError(c, err, "GetSale: Error from saleService.GetSaleByReceiptCode for "+receiptCode)
		return
	}
	c.JSON(http.StatusOK, sale)
}
