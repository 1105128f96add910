package services

import (
	"testing"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(total int64) *models.Booking {
	amount := decimal.NewFromInt(total)
	return &models.Booking{
		ID:          1,
		ReceiptCode: "IR-1001",
		TotalAmount: amount,
		Balance:     amount,
		Status:      models.BookingStatusAwaitingPayment,
	}
}

func TestApplyPaymentPartialAdvance(t *testing.T) {
	booking := newTestBooking(500)
	paidOn := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	payment, err := applyPayment(booking, decimal.NewFromInt(300), models.ChannelCash, paidOn)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPartiallyPaid, booking.Status)
	assert.True(t, booking.AmountPaid.Equal(decimal.NewFromInt(300)))
	assert.True(t, booking.Balance.Equal(decimal.NewFromInt(200)))
	assert.True(t, booking.CashAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, booking.UpiAmount.IsZero())
	assert.Equal(t, "300 Cash", booking.AdvanceNote)
	assert.Nil(t, booking.SettlementDate)
	assert.Nil(t, booking.BalanceReceiptCode)

	assert.Equal(t, models.PaymentKindAdvance, payment.Kind)
	assert.Equal(t, models.ChannelCash, payment.Channel)
	assert.Equal(t, paidOn, payment.PaidOn)
}

func TestApplyPaymentSettlement(t *testing.T) {
	booking := newTestBooking(500)
	paidOn := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	settledOn := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	_, err := applyPayment(booking, decimal.NewFromInt(300), models.ChannelCash, paidOn)
	require.NoError(t, err)

	payment, err := applyPayment(booking, decimal.NewFromInt(200), models.ChannelUPI, settledOn)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusSettled, booking.Status)
	assert.True(t, booking.Balance.IsZero())
	assert.True(t, booking.AmountPaid.Equal(booking.TotalAmount))
	assert.True(t, booking.CashAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, booking.UpiAmount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, models.SettledAdvanceNote, booking.AdvanceNote)
	require.NotNil(t, booking.SettlementDate)
	assert.Equal(t, settledOn, *booking.SettlementDate)

	assert.Equal(t, models.PaymentKindSettlement, payment.Kind)
	assert.Equal(t, models.ChannelUPI, payment.Channel)
}

func TestApplyPaymentChannelSplitInvariant(t *testing.T) {
	booking := newTestBooking(1000)
	now := time.Now()

	_, err := applyPayment(booking, decimal.NewFromInt(100), models.ChannelCash, now)
	require.NoError(t, err)
	_, err = applyPayment(booking, decimal.NewFromInt(250), models.ChannelUPI, now)
	require.NoError(t, err)
	_, err = applyPayment(booking, decimal.NewFromInt(150), models.ChannelCash, now)
	require.NoError(t, err)

	assert.True(t, booking.CashAmount.Add(booking.UpiAmount).Equal(booking.AmountPaid))
	assert.True(t, booking.Balance.Equal(booking.TotalAmount.Sub(booking.AmountPaid)))
}

func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	booking := newTestBooking(500)

	_, err := applyPayment(booking, decimal.Zero, models.ChannelCash, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	_, err = applyPayment(booking, decimal.NewFromInt(-50), models.ChannelCash, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	// Failed payments must not touch the booking.
	assert.True(t, booking.AmountPaid.IsZero())
	assert.Equal(t, models.BookingStatusAwaitingPayment, booking.Status)
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	booking := newTestBooking(500)

	_, err := applyPayment(booking, decimal.NewFromInt(501), models.ChannelUPI, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
	assert.True(t, booking.Balance.Equal(decimal.NewFromInt(500)))
}

func TestApplyPaymentRejectsSettledBooking(t *testing.T) {
	booking := newTestBooking(500)
	_, err := applyPayment(booking, decimal.NewFromInt(500), models.ChannelCash, time.Now())
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusSettled, booking.Status)

	_, err = applyPayment(booking, decimal.NewFromInt(1), models.ChannelCash, time.Now())
	assert.ErrorIs(t, err, ErrBookingAlreadySettled)
}

func TestApplyPaymentFullAtOnceIsSettlement(t *testing.T) {
	booking := newTestBooking(500)

	payment, err := applyPayment(booking, decimal.NewFromInt(500), models.ChannelCash, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentKindSettlement, payment.Kind)
	assert.Equal(t, models.BookingStatusSettled, booking.Status)
	assert.Equal(t, models.SettledAdvanceNote, booking.AdvanceNote)
	// The balance receipt code is assigned only for settlements of
	// previously created bookings, never at creation time.
	assert.Nil(t, booking.BalanceReceiptCode)
}
