package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchandiseSale is a completed counter sale. It only exists if every
// line item's stock decrement succeeded in the same transaction.
type MerchandiseSale struct {
	ID          int64           `json:"id" db:"id"`
	ReceiptCode string          `json:"receipt_code" db:"receipt_code"`
	LineItems   []SaleLineItem  `json:"line_items"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	CashAmount  decimal.Decimal `json:"cash_amount" db:"cash_amount"`
	UpiAmount   decimal.Decimal `json:"upi_amount" db:"upi_amount"`
	CreatedDate time.Time       `json:"created_date" db:"created_date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// SaleLineItem is one sold line with the unit price captured at sale time.
type SaleLineItem struct {
	ID              int64           `json:"id" db:"id"`
	SaleID          int64           `json:"sale_id" db:"sale_id"`
	ItemName        string          `json:"item_name" db:"item_name"`
	Quantity        int             `json:"quantity" db:"quantity"`
	UnitPriceAtSale decimal.Decimal `json:"unit_price_at_sale" db:"unit_price_at_sale"`
	LineTotal       decimal.Decimal `json:"line_total" db:"line_total"`
}
