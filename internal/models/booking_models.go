package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus defines the settlement lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusAwaitingPayment: balance > 0 and no payment recorded yet.
	BookingStatusAwaitingPayment BookingStatus = "awaiting_payment"
	// BookingStatusPartiallyPaid: balance > 0 with at least one partial payment.
	BookingStatusPartiallyPaid BookingStatus = "partially_paid"
	// BookingStatusSettled: balance reached zero. Terminal; never reopened.
	BookingStatusSettled BookingStatus = "settled"
)

// IsValidBookingStatus checks if the provided status string is a valid BookingStatus.
func IsValidBookingStatus(status string) bool {
	switch BookingStatus(status) {
	case BookingStatusAwaitingPayment, BookingStatusPartiallyPaid, BookingStatusSettled:
		return true
	default:
		return false
	}
}

// PaymentKind classifies a booking payment event.
type PaymentKind string

const (
	// PaymentKindAdvance is a partial payment that leaves a balance due.
	PaymentKindAdvance PaymentKind = "advance"
	// PaymentKindSettlement is the payment that zeroes the balance.
	PaymentKindSettlement PaymentKind = "settlement"
)

// Booking represents a pre-scheduled irumudi bundle with price-per-unit
// and quantity. Invariants: balance = total_amount - amount_paid at all
// times; amount_paid only increases; settlement_date is set exactly when
// the balance reaches zero; balance_receipt_code is assigned at most once.
type Booking struct {
	ID                 int64            `json:"id" db:"id"`
	ReceiptCode        string           `json:"receipt_code" db:"receipt_code"`
	CustomerName       string           `json:"customer_name" db:"customer_name"`
	Contact            *string          `json:"contact,omitempty" db:"contact"`
	Quantity           int              `json:"quantity" db:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unit_price" db:"unit_price"`
	TotalAmount        decimal.Decimal  `json:"total_amount" db:"total_amount"`
	AmountPaid         decimal.Decimal  `json:"amount_paid" db:"amount_paid"`
	Balance            decimal.Decimal  `json:"balance" db:"balance"`
	CashAmount         decimal.Decimal  `json:"cash_amount" db:"cash_amount"`
	UpiAmount          decimal.Decimal  `json:"upi_amount" db:"upi_amount"`
	Status             BookingStatus    `json:"status" db:"status"`
	AdvanceNote        string           `json:"advance_note" db:"advance_note"`
	BalanceReceiptCode *string          `json:"balance_receipt_code,omitempty" db:"balance_receipt_code"`
	CreatedDate        time.Time        `json:"created_date" db:"created_date"`
	ScheduledDate      time.Time        `json:"scheduled_date" db:"scheduled_date"`
	ScheduledTime      string           `json:"scheduled_time" db:"scheduled_time"`
	SettlementDate     *time.Time       `json:"settlement_date,omitempty" db:"settlement_date"`
	CreatedAt          time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at" db:"updated_at"`
	Payments           []BookingPayment `json:"payments,omitempty"`
}

// BookingPayment is one append-only payment event against a booking.
// The balance and any period's channel attribution derive from these
// events rather than from the advance-note text.
type BookingPayment struct {
	ID        int64           `json:"id" db:"id"`
	BookingID int64           `json:"booking_id" db:"booking_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Channel   PaymentChannel  `json:"channel" db:"channel"`
	Kind      PaymentKind     `json:"kind" db:"kind"`
	PaidOn    time.Time       `json:"paid_on" db:"paid_on"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// BookingFilters defines the available filters for querying bookings.
type BookingFilters struct {
	OutstandingOnly  bool
	ScheduledFrom    *time.Time
	ScheduledTo      *time.Time
	ReceiptCodeFrom  *string
	ReceiptCodeTo    *string
	Page             int
	PageSize         int
}
