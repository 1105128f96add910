package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDocument(t *testing.T) {
	contact := "9876543210"
	booking := Booking{
		ReceiptCode:   "IR-1001",
		CustomerName:  "Manjunath",
		Contact:       &contact,
		Quantity:      2,
		UnitPrice:     decimal.NewFromInt(250),
		TotalAmount:   decimal.NewFromInt(500),
		AmountPaid:    decimal.NewFromInt(300),
		Balance:       decimal.NewFromInt(200),
		CreatedDate:   time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		ScheduledDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "06:30 AM",
	}

	doc := booking.Document()
	assert.Equal(t, "IRUMUDI SCHEDULE", doc.Title)
	assert.Equal(t, booking.CreatedDate, doc.Date)

	labels := make([]string, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		labels = append(labels, f.Label)
	}
	assert.Equal(t, []string{
		"Receipt Number", "Customer Name", "Contact", "Irumudi Price",
		"Irumudi Quantity", "Schedule Date", "Scheduled Time",
		"Total Amount", "Amount Paid", "Balance",
	}, labels)

	assert.Equal(t, "IR-1001", doc.Fields[0].Value)
	assert.Equal(t, "Rs. 250", doc.Fields[3].Value)
	assert.Equal(t, "2", doc.Fields[4].Value)
	assert.Equal(t, "2025-12-01", doc.Fields[5].Value)
}

func TestBookingDocumentOmitsMissingContact(t *testing.T) {
	booking := Booking{ReceiptCode: "IR-1002", CustomerName: "Ravi"}
	doc := booking.Document()
	for _, f := range doc.Fields {
		assert.NotEqual(t, "Contact", f.Label)
	}
}

func TestSettlementDocument(t *testing.T) {
	code := "BRN-IR-1001"
	settledOn := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	booking := Booking{
		ReceiptCode:        "IR-1001",
		CustomerName:       "Manjunath",
		TotalAmount:        decimal.NewFromInt(500),
		AmountPaid:         decimal.NewFromInt(500),
		Balance:            decimal.Zero,
		Status:             BookingStatusSettled,
		BalanceReceiptCode: &code,
		SettlementDate:     &settledOn,
	}

	doc := booking.SettlementDocument()
	assert.Equal(t, "BALANCE PAID RECEIPT", doc.Title)
	assert.Equal(t, settledOn, doc.Date)
	require.NotEmpty(t, doc.Fields)
	assert.Equal(t, "Balance Receipt Number", doc.Fields[0].Label)
	assert.Equal(t, "BRN-IR-1001", doc.Fields[0].Value)
}

func TestSimpleReceiptDocumentTitles(t *testing.T) {
	tests := []struct {
		stream Stream
		title  string
	}{
		{StreamMaaladharane, "MAALADHARANE / ARCHANE"},
		{StreamGheeCoconut, "GHEE / COCONUT"},
		{StreamDonation, "DONATION"},
	}
	for _, tc := range tests {
		receipt := SimpleReceipt{Stream: tc.stream, ReceiptCode: "X-1", CustomerName: "A", TotalAmount: decimal.NewFromInt(10)}
		assert.Equal(t, tc.title, receipt.Document().Title)
	}
}

func TestMerchandiseSaleDocument(t *testing.T) {
	sale := MerchandiseSale{
		ReceiptCode: "ML-1001",
		TotalAmount: decimal.NewFromInt(350),
		LineItems: []SaleLineItem{
			{ItemName: "Mala", Quantity: 2, UnitPriceAtSale: decimal.NewFromInt(100), LineTotal: decimal.NewFromInt(200)},
			{ItemName: "Shawl", Quantity: 1, UnitPriceAtSale: decimal.NewFromInt(150), LineTotal: decimal.NewFromInt(150)},
		},
	}

	doc := sale.Document()
	assert.Equal(t, "ITEMS CONTENTS", doc.Title)
	require.Len(t, doc.Fields, 4)
	assert.Equal(t, "Mala", doc.Fields[1].Label)
	assert.Equal(t, "2 x Rs. 100 = Rs. 200", doc.Fields[1].Value)
	assert.Equal(t, "Total Amount", doc.Fields[3].Label)
	assert.Equal(t, "Rs. 350", doc.Fields[3].Value)
}
