package services

import (
	"testing"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	from, to, err := parseDateRange("2025-11-01", "2025-11-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), to)

	_, _, err = parseDateRange("2025-11-30", "2025-11-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = parseDateRange("30/11/2025", "2025-12-01")
	assert.ErrorIs(t, err, ErrValidation)

	// A single-day range is valid.
	_, _, err = parseDateRange("2025-11-15", "2025-11-15")
	assert.NoError(t, err)
}

// Scenario: one 500 booking taken with a 300 cash advance and settled
// later with 200 over UPI, plus a 100 cash donation and a 50 expense,
// all inside the reporting window.
func reconciliationInputs() reportInputs {
	return reportInputs{
		bookingsCreated: []models.Booking{
			{ReceiptCode: "IR-1001", TotalAmount: decimal.NewFromInt(500)},
		},
		advances: []models.BookingAdvanceRow{
			{ReceiptCode: "IR-1001", Amount: decimal.NewFromInt(300), Channel: models.ChannelCash},
		},
		settlements: []models.BookingSettlementRow{
			{BalanceReceiptCode: "BRN-IR-1001", Amount: decimal.NewFromInt(200), Channel: models.ChannelUPI},
		},
		donations: []models.SimpleReceipt{
			{ReceiptCode: "DN-1001", TotalAmount: decimal.NewFromInt(100), CashAmount: decimal.NewFromInt(100)},
		},
		expenses: []models.Expense{
			{Description: "flowers", Amount: decimal.NewFromInt(50)},
		},
	}
}

func TestComposePeriodReportReconciliation(t *testing.T) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	report := composePeriodReport(from, to, reconciliationInputs())

	assert.Equal(t, 1, report.BookingAdvances.Count)
	assert.Equal(t, "IR-1001", report.BookingAdvances.ReceiptRangeStart)
	assert.True(t, report.BookingAdvances.TotalAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.BookingAdvances.CashAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.BookingAdvances.UpiAmount.IsZero())

	assert.Equal(t, 1, report.BookingSettlements.Count)
	assert.Equal(t, "BRN-IR-1001", report.BookingSettlements.ReceiptRangeStart)
	assert.True(t, report.BookingSettlements.TotalAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.BookingSettlements.UpiAmount.Equal(decimal.NewFromInt(200)))

	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, report.CashGrandTotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, report.UpiGrandTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.ExpenseTotal.Equal(decimal.NewFromInt(50)))

	// Cash in hand: everything collected minus UPI minus expenses.
	assert.True(t, report.NetBalance.Equal(decimal.NewFromInt(350)))
}

func TestComposePeriodReportIsDeterministic(t *testing.T) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	first := composePeriodReport(from, to, reconciliationInputs())
	second := composePeriodReport(from, to, reconciliationInputs())
	assert.Equal(t, first, second)
}

func TestComposePeriodReportEmptyLedger(t *testing.T) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	report := composePeriodReport(from, to, reportInputs{})

	assert.True(t, report.BookingAdvances.IsZero())
	assert.True(t, report.BookingSettlements.IsZero())
	assert.True(t, report.Maaladharane.IsZero())
	assert.True(t, report.GheeCoconut.IsZero())
	assert.True(t, report.Merchandise.IsZero())
	assert.True(t, report.Donations.IsZero())
	assert.True(t, report.GrandTotal.IsZero())
	assert.True(t, report.NetBalance.IsZero())
	assert.Empty(t, report.Expenses)
}

func TestSummarizeSimpleReceiptsRange(t *testing.T) {
	receipts := []models.SimpleReceipt{
		{ReceiptCode: "MD-1001", TotalAmount: decimal.NewFromInt(40), CashAmount: decimal.NewFromInt(40)},
		{ReceiptCode: "MD-1002", TotalAmount: decimal.NewFromInt(60), UpiAmount: decimal.NewFromInt(60)},
		{ReceiptCode: "MD-1003", TotalAmount: decimal.NewFromInt(25), CashAmount: decimal.NewFromInt(25)},
	}

	summary := summarizeSimpleReceipts(receipts)
	assert.Equal(t, "MD-1001", summary.ReceiptRangeStart)
	assert.Equal(t, "MD-1003", summary.ReceiptRangeEnd)
	assert.Equal(t, 3, summary.Count)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(125)))
	assert.True(t, summary.CashAmount.Equal(decimal.NewFromInt(65)))
	assert.True(t, summary.UpiAmount.Equal(decimal.NewFromInt(60)))
}

// A booking settled in full at creation counts in the advances line but
// carries its money on the settlements line, keyed by the booking's own
// receipt code since no balance receipt is ever issued.
func TestComposePeriodReportSettledAtCreation(t *testing.T) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	inputs := reportInputs{
		bookingsCreated: []models.Booking{
			{ReceiptCode: "IR-1005", TotalAmount: decimal.NewFromInt(250)},
		},
		settlements: []models.BookingSettlementRow{
			{BalanceReceiptCode: "IR-1005", Amount: decimal.NewFromInt(250), Channel: models.ChannelCash},
		},
	}
	report := composePeriodReport(from, to, inputs)

	assert.Equal(t, 1, report.BookingAdvances.Count)
	assert.True(t, report.BookingAdvances.TotalAmount.IsZero())
	assert.True(t, report.BookingSettlements.TotalAmount.Equal(decimal.NewFromInt(250)))
	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, report.NetBalance.Equal(decimal.NewFromInt(250)))
}
