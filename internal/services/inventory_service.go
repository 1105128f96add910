package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"

	"github.com/shopspring/decimal"
)

// UpsertItemRequest registers a new merchandise item or restocks an
// existing one. Restocking adds to the stock level and replaces prices.
type UpsertItemRequest struct {
	Name          string          `json:"name" binding:"required"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"required,gt=0"`
}

type InventoryService interface {
	UpsertItem(req UpsertItemRequest) (*models.InventoryItem, error)
	GetItems(page, pageSize int) ([]models.InventoryItem, int, error)
	GetItemByName(name string) (*models.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	db            *sql.DB
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(ir repositories.InventoryRepository, db *sql.DB) InventoryService {
	return &inventoryService{inventoryRepo: ir, db: db}
}

func (s *inventoryService) UpsertItem(req UpsertItemRequest) (*models.InventoryItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if req.StockQuantity <= 0 {
		return nil, fmt.Errorf("%w: stock quantity must be positive", ErrValidation)
	}
	if !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", ErrValidation)
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost must not be negative", ErrValidation)
	}

	item := &models.InventoryItem{
		Name:          req.Name,
		UnitCost:      req.UnitCost,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
	}
	stored, err := s.inventoryRepo.UpsertItem(s.db, item)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert inventory item: %w", err)
	}
	return stored, nil
}

func (s *inventoryService) GetItems(page, pageSize int) ([]models.InventoryItem, int, error) {
	items, totalCount, err := s.inventoryRepo.GetItems(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get inventory items: %w", err)
	}
	return items, totalCount, nil
}

func (s *inventoryService) GetItemByName(name string) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetItemByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownItem, name)
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}
