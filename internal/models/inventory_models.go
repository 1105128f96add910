package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents one merchandise item and its stock level.
// Items are keyed by name; stock_quantity never goes negative.
type InventoryItem struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name" binding:"required"`
	UnitCost      decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	UnitPrice     decimal.Decimal `json:"unit_price" db:"unit_price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// CartLine is one requested line of a merchandise sale. The cart is an
// explicit value owned by the caller; nothing about a sale lives in
// ambient session state.
type CartLine struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}
