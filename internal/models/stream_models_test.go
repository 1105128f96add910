package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStreamPrefixes(t *testing.T) {
	assert.Equal(t, "IR", StreamBooking.Prefix())
	assert.Equal(t, "MD", StreamMaaladharane.Prefix())
	assert.Equal(t, "GC", StreamGheeCoconut.Prefix())
	assert.Equal(t, "ML", StreamMerchandise.Prefix())
	assert.Equal(t, "DN", StreamDonation.Prefix())
	assert.Equal(t, "", Stream("bogus").Prefix())
}

func TestFormatReceiptCode(t *testing.T) {
	assert.Equal(t, "IR-1001", StreamBooking.FormatReceiptCode(1001))
	assert.Equal(t, "DN-1247", StreamDonation.FormatReceiptCode(1247))
}

func TestBalanceReceiptCode(t *testing.T) {
	assert.Equal(t, "BRN-IR-1001", BalanceReceiptCode("IR-1001"))
}

func TestIsValidStream(t *testing.T) {
	assert.True(t, IsValidStream("irumudi_booking"))
	assert.True(t, IsValidStream("donation"))
	assert.False(t, IsValidStream("IR"))
	assert.False(t, IsValidStream(""))
}

func TestIsSimpleReceiptStream(t *testing.T) {
	assert.True(t, IsSimpleReceiptStream(StreamMaaladharane))
	assert.True(t, IsSimpleReceiptStream(StreamGheeCoconut))
	assert.True(t, IsSimpleReceiptStream(StreamDonation))
	assert.False(t, IsSimpleReceiptStream(StreamBooking))
	assert.False(t, IsSimpleReceiptStream(StreamMerchandise))
}

func TestPaymentChannel(t *testing.T) {
	assert.True(t, IsValidPaymentChannel("cash"))
	assert.True(t, IsValidPaymentChannel("upi"))
	assert.False(t, IsValidPaymentChannel("card"))

	assert.Equal(t, "Cash", ChannelCash.Label())
	assert.Equal(t, "UPI", ChannelUPI.Label())
}

func TestFormatAdvanceNote(t *testing.T) {
	assert.Equal(t, "300 Cash", FormatAdvanceNote(decimal.NewFromInt(300), ChannelCash))
	assert.Equal(t, "150.5 UPI", FormatAdvanceNote(decimal.NewFromFloat(150.5), ChannelUPI))
}
