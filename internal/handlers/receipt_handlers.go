package handlers

import (
	"net/http"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler holds the receipt service.
type ReceiptHandler struct {
	receiptService services.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(rs services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: rs}
}

// streamFromPath maps the URL segment to its revenue stream.
var streamFromPath = map[string]models.Stream{
	"maaladharane": models.StreamMaaladharane,
	"ghee-coconut": models.StreamGheeCoconut,
	"donations":    models.StreamDonation,
}

// CreateReceipt handles recording a receipt in one of the simple streams.
// The stream comes from the :stream path segment.
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	stream, ok := streamFromPath[c.Param("stream")]
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Unknown receipt stream.", c.Param("stream")))
		return
	}

	var req services.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateReceipt: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	receipt, err := h.receiptService.CreateReceipt(stream, req)
	if err != nil {
		respondServiceError(c, err, "CreateReceipt: Error from receiptService.CreateReceipt")
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// GetReceipts handles listing receipts of one simple stream.
func (h *ReceiptHandler) GetReceipts(c *gin.Context) {
	stream, ok := streamFromPath[c.Param("stream")]
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Unknown receipt stream.", c.Param("stream")))
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	receipts, totalCount, err := h.receiptService.GetReceipts(stream, page, pageSize)
	if err != nil {
		respondServiceError(c, err, "GetReceipts: Error from receiptService.GetReceipts")
		return
	}
	respondPaginated(c, receipts, totalCount, page, pageSize)
}

// LookupDocument resolves any receipt code to its printable document.
func (h *ReceiptHandler) LookupDocument(c *gin.Context) {
	code := c.Param("code")

	document, err := h.receiptService.LookupDocument(code)
	if err != nil {
		respondServiceError(c, err, "LookupDocument: Error from receiptService.LookupDocument for "+code)
		return
	}
	c.JSON(http.StatusOK, document)
}
