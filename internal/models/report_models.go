package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StreamSummary is one line of a period report: the receipt range, record
// count and channel-split totals of a single revenue stream. A stream with
// no records in the range yields the zero value (empty range, count 0).
type StreamSummary struct {
	ReceiptRangeStart string          `json:"receipt_range_start"`
	ReceiptRangeEnd   string          `json:"receipt_range_end"`
	Count             int             `json:"count"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	CashAmount        decimal.Decimal `json:"cash_amount"`
	UpiAmount         decimal.Decimal `json:"upi_amount"`
}

// IsZero reports whether the summary covers no records.
func (s StreamSummary) IsZero() bool {
	return s.Count == 0 && s.ReceiptRangeStart == ""
}

// PeriodReport is the consolidated financial summary for a closed date
// range. It is derived on demand and never mutates the ledger.
//
// Bookings contribute two separate lines: advances collected on bookings
// created in the period, and balance-clearing payments made during the
// period regardless of when the booking was created. The net balance is
// the reconciled cash-in-hand: grand total minus UPI receipts minus
// expenses.
type PeriodReport struct {
	FromDate           time.Time       `json:"from_date"`
	ToDate             time.Time       `json:"to_date"`
	BookingAdvances    StreamSummary   `json:"booking_advances"`
	BookingSettlements StreamSummary   `json:"booking_settlements"`
	Maaladharane       StreamSummary   `json:"maaladharane"`
	GheeCoconut        StreamSummary   `json:"ghee_coconut"`
	Merchandise        StreamSummary   `json:"merchandise"`
	Donations          StreamSummary   `json:"donations"`
	Expenses           []Expense       `json:"expenses,omitempty"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	CashGrandTotal     decimal.Decimal `json:"cash_grand_total"`
	UpiGrandTotal      decimal.Decimal `json:"upi_grand_total"`
	ExpenseTotal       decimal.Decimal `json:"expense_total"`
	NetBalance         decimal.Decimal `json:"net_balance"`
}

// BookingAdvanceRow is one advance payment event joined to its booking's
// receipt code, as fed to the report builder.
type BookingAdvanceRow struct {
	ReceiptCode string          `json:"receipt_code"`
	Amount      decimal.Decimal `json:"amount"`
	Channel     PaymentChannel  `json:"channel"`
	PaidOn      time.Time       `json:"paid_on"`
}

// BookingSettlementRow is one settlement payment event joined to its
// booking's balance receipt code.
type BookingSettlementRow struct {
	BalanceReceiptCode string          `json:"balance_receipt_code"`
	Amount             decimal.Decimal `json:"amount"`
	Channel            PaymentChannel  `json:"channel"`
	SettledOn          time.Time       `json:"settled_on"`
}

// ReportSnapshot is a persisted copy of a computed period report's totals.
// Snapshots are a convenience for the register book; the live report is
// always recomputed from the ledger.
type ReportSnapshot struct {
	ID             int64           `json:"id" db:"id"`
	FromDate       time.Time       `json:"from_date" db:"from_date"`
	ToDate         time.Time       `json:"to_date" db:"to_date"`
	GrandTotal     decimal.Decimal `json:"grand_total" db:"grand_total"`
	CashGrandTotal decimal.Decimal `json:"cash_grand_total" db:"cash_grand_total"`
	UpiGrandTotal  decimal.Decimal `json:"upi_grand_total" db:"upi_grand_total"`
	ExpenseTotal   decimal.Decimal `json:"expense_total" db:"expense_total"`
	NetBalance     decimal.Decimal `json:"net_balance" db:"net_balance"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}
