package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Stream identifies one revenue category. Each stream owns its own
// receipt-code prefix and sequence.
type Stream string

const (
	StreamBooking      Stream = "irumudi_booking"
	StreamMaaladharane Stream = "maaladharane"
	StreamGheeCoconut  Stream = "ghee_coconut"
	StreamMerchandise  Stream = "merchandise"
	StreamDonation     Stream = "donation"
)

// IsValidStream checks if the provided string names a known revenue stream.
func IsValidStream(stream string) bool {
	switch Stream(stream) {
	case StreamBooking, StreamMaaladharane, StreamGheeCoconut, StreamMerchandise, StreamDonation:
		return true
	default:
		return false
	}
}

// IsSimpleReceiptStream reports whether the stream uses the shared
// SimpleReceipt shape (bookings and merchandise sales have richer records).
func IsSimpleReceiptStream(s Stream) bool {
	switch s {
	case StreamMaaladharane, StreamGheeCoconut, StreamDonation:
		return true
	default:
		return false
	}
}

// Prefix returns the fixed two-letter receipt-code prefix of the stream.
func (s Stream) Prefix() string {
	switch s {
	case StreamBooking:
		return "IR"
	case StreamMaaladharane:
		return "MD"
	case StreamGheeCoconut:
		return "GC"
	case StreamMerchandise:
		return "ML"
	case StreamDonation:
		return "DN"
	default:
		return ""
	}
}

// FormatReceiptCode builds the human-readable receipt code for the n-th
// receipt of the stream, e.g. IR-1001.
func (s Stream) FormatReceiptCode(seq int64) string {
	return s.Prefix() + "-" + strconv.FormatInt(seq, 10)
}

// BalanceReceiptCode derives the code printed on the balance-settlement
// receipt of a booking, e.g. BRN-IR-1001.
func BalanceReceiptCode(receiptCode string) string {
	return "BRN-" + receiptCode
}

// PaymentChannel is the channel a payment arrived through.
type PaymentChannel string

const (
	ChannelCash PaymentChannel = "cash"
	ChannelUPI  PaymentChannel = "upi"
)

// IsValidPaymentChannel checks if the provided string is a known channel.
func IsValidPaymentChannel(channel string) bool {
	switch PaymentChannel(channel) {
	case ChannelCash, ChannelUPI:
		return true
	default:
		return false
	}
}

// Label returns the channel name as printed on receipts.
func (c PaymentChannel) Label() string {
	if c == ChannelUPI {
		return "UPI"
	}
	return "Cash"
}

// SettledAdvanceNote is the sentinel written to a booking's advance note
// once the balance reaches zero.
const SettledAdvanceNote = "0"

// FormatAdvanceNote renders the display note describing the most recent
// partial payment, e.g. "300 Cash". The note is write-only: period
// reports derive channel attribution from payment events, never from it.
func FormatAdvanceNote(amount decimal.Decimal, channel PaymentChannel) string {
	return amount.String() + " " + channel.Label()
}
