package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest sells one or more merchandise items in a single
// all-or-nothing transaction.
type CreateSaleRequest struct {
	Lines      []models.CartLine `json:"lines" binding:"required,dive"`
	CashAmount decimal.Decimal   `json:"cash_amount"`
	UpiAmount  decimal.Decimal   `json:"upi_amount"`
}

// StockAvailability is the read-only answer to a pre-sale stock check.
type StockAvailability struct {
	ItemName  string `json:"item_name"`
	Requested int    `json:"requested"`
	InStock   int    `json:"in_stock"`
	Available bool   `json:"available"`
}

type SaleService interface {
	// SellItems validates the cart, decrements stock and records the sale
	// in one transaction. Any line failing sufficiency aborts everything.
	SellItems(req CreateSaleRequest) (*models.MerchandiseSale, error)
	// CheckStock is advisory; SellItems re-validates under row locks.
	CheckStock(lines []models.CartLine) ([]StockAvailability, error)
	GetSaleByReceiptCode(receiptCode string) (*models.MerchandiseSale, error)
}

type saleService struct {
	saleRepo      repositories.SaleRepository
	inventoryRepo repositories.InventoryRepository
	sequenceRepo  repositories.SequenceRepository
	db            *sql.DB
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(
	slr repositories.SaleRepository,
	ir repositories.InventoryRepository,
	sr repositories.SequenceRepository,
	db *sql.DB,
) SaleService {
	return &saleService{
		saleRepo:      slr,
		inventoryRepo: ir,
		sequenceRepo:  sr,
		db:            db,
	}
}

// buildSaleLines prices the requested cart against the current inventory
// records and returns the line items plus the sale total. Sufficiency is
// checked here against the locked stock levels; the guarded decrement
// re-checks at write time.
func buildSaleLines(lines []models.CartLine, items map[string]*models.InventoryItem) ([]models.SaleLineItem, decimal.Decimal, error) {
	lineItems := make([]models.SaleLineItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: quantity for '%s' must be positive", ErrValidation, line.ItemName)
		}
		item, ok := items[line.ItemName]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: '%s'", ErrUnknownItem, line.ItemName)
		}
		if item.StockQuantity < line.Quantity {
			return nil, decimal.Zero, fmt.Errorf("%w: '%s' requested %d, available %d",
				ErrInsufficientStock, line.ItemName, line.Quantity, item.StockQuantity)
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lineItems = append(lineItems, models.SaleLineItem{
			ItemName:        line.ItemName,
			Quantity:        line.Quantity,
			UnitPriceAtSale: item.UnitPrice,
			LineTotal:       lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return lineItems, total, nil
}

func (s *saleService) SellItems(req CreateSaleRequest) (*models.MerchandiseSale, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: sale requires at least one line", ErrValidation)
	}
	if req.CashAmount.IsNegative() || req.UpiAmount.IsNegative() {
		return nil, fmt.Errorf("%w: channel amounts must not be negative", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock every item up front so pricing and the later decrement see the
	// same stock level.
	items := make(map[string]*models.InventoryItem, len(req.Lines))
	for _, line := range req.Lines {
		if _, seen := items[line.ItemName]; seen {
			return nil, fmt.Errorf("%w: item '%s' listed twice", ErrValidation, line.ItemName)
		}
		item, err := s.inventoryRepo.GetItemForUpdate(tx, line.ItemName)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: '%s'", ErrUnknownItem, line.ItemName)
			}
			return nil, err
		}
		items[line.ItemName] = item
	}

	lineItems, total, err := buildSaleLines(req.Lines, items)
	if err != nil {
		return nil, err
	}
	if !req.CashAmount.Add(req.UpiAmount).Equal(total) {
		return nil, fmt.Errorf("%w: %s + %s != %s", ErrChannelSplitMismatch, req.CashAmount, req.UpiAmount, total)
	}

	for _, li := range lineItems {
		if _, err := s.inventoryRepo.DecrementStock(tx, li.ItemName, li.Quantity); err != nil {
			if errors.Is(err, repositories.ErrStockConflict) {
				return nil, fmt.Errorf("%w: '%s'", ErrInsufficientStock, li.ItemName)
			}
			return nil, err
		}
	}

	sale := &models.MerchandiseSale{
		LineItems:   lineItems,
		TotalAmount: total,
		CashAmount:  req.CashAmount,
		UpiAmount:   req.UpiAmount,
		CreatedDate: time.Now(),
	}

	for attempt := 0; attempt < 2; attempt++ {
		code, err := s.sequenceRepo.NextReceiptCode(tx, models.StreamMerchandise)
		if err != nil {
			return nil, err
		}
		sale.ReceiptCode = code

		created, err := s.saleRepo.CreateSale(tx, sale)
		if err == nil {
			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("failed to commit sale transaction: %w", err)
			}
			return created, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: stream %s", ErrAllocationConflict, models.StreamMerchandise)
}

func (s *saleService) CheckStock(lines []models.CartLine) ([]StockAvailability, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: stock check requires at least one line", ErrValidation)
	}
	results := make([]StockAvailability, 0, len(lines))
	for _, line := range lines {
		stock, err := s.inventoryRepo.GetStock(line.ItemName)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: '%s'", ErrUnknownItem, line.ItemName)
			}
			return nil, err
		}
		results = append(results, StockAvailability{
			ItemName:  line.ItemName,
			Requested: line.Quantity,
			InStock:   stock,
			Available: stock >= line.Quantity && line.Quantity > 0,
		})
	}
	return results, nil
}

func (s *saleService) GetSaleByReceiptCode(receiptCode string) (*models.MerchandiseSale, error) {
	sale, err := s.saleRepo.GetSaleByReceiptCode(receiptCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, receiptCode)
		}
		return nil, err
	}
	return sale, nil
}
