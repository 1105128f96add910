package services

import "errors"

// Service-level errors. Handlers map these to HTTP status codes; the
// wrapped repository error stays inside for logging.
var (
	// ErrValidation covers malformed or missing request fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPaymentAmount is returned when a payment is not positive
	// or exceeds the outstanding balance.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrChannelSplitMismatch is returned when cash + upi does not equal
	// the stated total of a record.
	ErrChannelSplitMismatch = errors.New("cash and upi amounts do not sum to total")

	// ErrBookingNotFound is returned when no booking carries the receipt code.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingAlreadySettled is returned for payments against a booking
	// whose balance already reached zero.
	ErrBookingAlreadySettled = errors.New("booking already settled")

	// ErrReceiptNotFound is returned when a receipt code matches no record
	// in any stream.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrUnknownItem is returned when a sale or stock check names an item
	// that is not in inventory.
	ErrUnknownItem = errors.New("unknown inventory item")

	// ErrInsufficientStock is returned when a sale requests more units
	// than are in stock; the whole sale is rejected.
	ErrInsufficientStock = errors.New("insufficient stock for item")

	// ErrAllocationConflict is returned when receipt-code allocation lost
	// a uniqueness race twice in a row. The caller may simply retry.
	ErrAllocationConflict = errors.New("receipt code allocation conflict")

	// ErrInvalidDateRange is returned when a report or listing range has
	// from after to.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrCorruptLedgerRecord is returned when a stored record violates a
	// ledger invariant, e.g. channel amounts that no longer sum to the
	// amount paid.
	ErrCorruptLedgerRecord = errors.New("corrupt ledger record")
)
