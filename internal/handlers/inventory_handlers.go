package handlers

import (
	"net/http"

	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// UpsertItem handles registering a new merchandise item or restocking an
// existing one.
func (h *InventoryHandler) UpsertItem(c *gin.Context) {
	var req services.UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpsertItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.UpsertItem(req)
	if err != nil {
		respondServiceError(c, err, "UpsertItem: Error from inventoryService.UpsertItem")
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetItems handles listing inventory items.
func (h *InventoryHandler) GetItems(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	items, totalCount, err := h.inventoryService.GetItems(page, pageSize)
	if err != nil {
		respondServiceError(c, err, "GetItems: Error from inventoryService.GetItems")
		return
	}
	respondPaginated(c, items, totalCount, page, pageSize)
}

// GetItem handles fetching a single item by name.
func (h *InventoryHandler) GetItem(c *gin.Context) {
	name := c.Param("name")

	item, err := h.inventoryService.GetItemByName(name)
	if err != nil {
		respondServiceError(c, err, "GetItem: Error from inventoryService.GetItemByName for "+name)
		return
	}
	c.JSON(http.StatusOK, item)
}
