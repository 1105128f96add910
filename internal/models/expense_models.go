package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a write-once cash outflow. Expenses carry no channel split;
// the period report subtracts the full amount from the cash position.
type Expense struct {
	ID          int64           `json:"id" db:"id"`
	Description string          `json:"description" db:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	CreatedDate time.Time       `json:"created_date" db:"created_date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
