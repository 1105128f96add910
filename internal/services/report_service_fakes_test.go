package services

import (
	"testing"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the read-only report path. Write methods are never
// reached by BuildReport and simply panic.

type fakeBookingRepo struct {
	created     []models.Booking
	advances    []models.BookingAdvanceRow
	settlements []models.BookingSettlementRow
}

func (f *fakeBookingRepo) CreateBooking(repositories.SQLExecutor, *models.Booking) (*models.Booking, error) {
	panic("not used")
}
func (f *fakeBookingRepo) GetBookingByReceiptCode(string) (*models.Booking, error) {
	panic("not used")
}
func (f *fakeBookingRepo) GetBookingForUpdate(repositories.SQLExecutor, string) (*models.Booking, error) {
	panic("not used")
}
func (f *fakeBookingRepo) UpdateSettlementState(repositories.SQLExecutor, *models.Booking) error {
	panic("not used")
}
func (f *fakeBookingRepo) AddPayment(repositories.SQLExecutor, *models.BookingPayment) error {
	panic("not used")
}
func (f *fakeBookingRepo) GetPaymentsByBookingID(int64) ([]models.BookingPayment, error) {
	panic("not used")
}
func (f *fakeBookingRepo) GetBookings(models.BookingFilters) ([]models.Booking, int, error) {
	panic("not used")
}
func (f *fakeBookingRepo) GetBookingsCreatedBetween(from, to time.Time) ([]models.Booking, error) {
	return f.created, nil
}
func (f *fakeBookingRepo) GetAdvanceRowsBetween(from, to time.Time) ([]models.BookingAdvanceRow, error) {
	return f.advances, nil
}
func (f *fakeBookingRepo) GetSettlementRowsBetween(from, to time.Time) ([]models.BookingSettlementRow, error) {
	return f.settlements, nil
}

type fakeReceiptRepo struct {
	byStream map[models.Stream][]models.SimpleReceipt
}

func (f *fakeReceiptRepo) CreateReceipt(repositories.SQLExecutor, *models.SimpleReceipt) (*models.SimpleReceipt, error) {
	panic("not used")
}
func (f *fakeReceiptRepo) GetReceiptByCode(string) (*models.SimpleReceipt, error) {
	panic("not used")
}
func (f *fakeReceiptRepo) GetReceipts(models.Stream, int, int) ([]models.SimpleReceipt, int, error) {
	panic("not used")
}
func (f *fakeReceiptRepo) GetReceiptsCreatedBetween(stream models.Stream, from, to time.Time) ([]models.SimpleReceipt, error) {
	return f.byStream[stream], nil
}

type fakeSaleRepo struct {
	sales []models.MerchandiseSale
}

func (f *fakeSaleRepo) CreateSale(repositories.SQLExecutor, *models.MerchandiseSale) (*models.MerchandiseSale, error) {
	panic("not used")
}
func (f *fakeSaleRepo) GetSaleByReceiptCode(string) (*models.MerchandiseSale, error) {
	panic("not used")
}
func (f *fakeSaleRepo) GetSalesCreatedBetween(from, to time.Time) ([]models.MerchandiseSale, error) {
	return f.sales, nil
}

type fakeExpenseRepo struct {
	expenses []models.Expense
}

func (f *fakeExpenseRepo) CreateExpense(*models.Expense) (*models.Expense, error) {
	panic("not used")
}
func (f *fakeExpenseRepo) GetExpenses(int, int) ([]models.Expense, int, error) {
	panic("not used")
}
func (f *fakeExpenseRepo) GetExpensesCreatedBetween(from, to time.Time) ([]models.Expense, error) {
	return f.expenses, nil
}

type fakeSnapshotRepo struct {
	saved []models.ReportSnapshot
}

func (f *fakeSnapshotRepo) CreateSnapshot(snapshot *models.ReportSnapshot) (*models.ReportSnapshot, error) {
	snapshot.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *snapshot)
	return snapshot, nil
}
func (f *fakeSnapshotRepo) GetSnapshots(int, int) ([]models.ReportSnapshot, int, error) {
	return f.saved, len(f.saved), nil
}

func TestBuildReportEndToEnd(t *testing.T) {
	inputs := reconciliationInputs()
	service := NewReportService(
		&fakeBookingRepo{created: inputs.bookingsCreated, advances: inputs.advances, settlements: inputs.settlements},
		&fakeReceiptRepo{byStream: map[models.Stream][]models.SimpleReceipt{
			models.StreamDonation: inputs.donations,
		}},
		&fakeSaleRepo{},
		&fakeExpenseRepo{expenses: inputs.expenses},
		&fakeSnapshotRepo{},
	)

	report, err := service.BuildReport("2025-11-01", "2025-11-30")
	require.NoError(t, err)

	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, report.UpiGrandTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.ExpenseTotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, report.NetBalance.Equal(decimal.NewFromInt(350)))
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, "flowers", report.Expenses[0].Description)
}

func TestBuildReportRejectsInvertedRange(t *testing.T) {
	service := NewReportService(&fakeBookingRepo{}, &fakeReceiptRepo{}, &fakeSaleRepo{}, &fakeExpenseRepo{}, &fakeSnapshotRepo{})

	_, err := service.BuildReport("2025-12-01", "2025-11-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestSaveSnapshotPersistsTotals(t *testing.T) {
	inputs := reconciliationInputs()
	snapshots := &fakeSnapshotRepo{}
	service := NewReportService(
		&fakeBookingRepo{created: inputs.bookingsCreated, advances: inputs.advances, settlements: inputs.settlements},
		&fakeReceiptRepo{byStream: map[models.Stream][]models.SimpleReceipt{
			models.StreamDonation: inputs.donations,
		}},
		&fakeSaleRepo{},
		&fakeExpenseRepo{expenses: inputs.expenses},
		snapshots,
	)

	snapshot, err := service.SaveSnapshot("2025-11-01", "2025-11-30")
	require.NoError(t, err)
	assert.True(t, snapshot.NetBalance.Equal(decimal.NewFromInt(350)))
	assert.Len(t, snapshots.saved, 1)
}
