package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimpleReceipt is the shared record shape for the maaladharane,
// ghee/coconut and donation streams. The payment channel split is fixed
// at creation; cash_amount + upi_amount always equals total_amount.
type SimpleReceipt struct {
	ID           int64           `json:"id" db:"id"`
	Stream       Stream          `json:"stream" db:"stream"`
	ReceiptCode  string          `json:"receipt_code" db:"receipt_code"`
	CustomerName string          `json:"customer_name" db:"customer_name"`
	Contact      *string         `json:"contact,omitempty" db:"contact"`
	TotalAmount  decimal.Decimal `json:"total_amount" db:"total_amount"`
	CashAmount   decimal.Decimal `json:"cash_amount" db:"cash_amount"`
	UpiAmount    decimal.Decimal `json:"upi_amount" db:"upi_amount"`
	CreatedDate  time.Time       `json:"created_date" db:"created_date"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
