package services

import (
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"
)

// ReportService derives the consolidated period report from the ledger
// and manages persisted snapshots of its totals.
type ReportService interface {
	BuildReport(fromDate, toDate string) (*models.PeriodReport, error)
	SaveSnapshot(fromDate, toDate string) (*models.ReportSnapshot, error)
	GetSnapshots(page, pageSize int) ([]models.ReportSnapshot, int, error)
}

type reportService struct {
	bookingRepo  repositories.BookingRepository
	receiptRepo  repositories.ReceiptRepository
	saleRepo     repositories.SaleRepository
	expenseRepo  repositories.ExpenseRepository
	snapshotRepo repositories.SnapshotRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	br repositories.BookingRepository,
	rr repositories.ReceiptRepository,
	slr repositories.SaleRepository,
	er repositories.ExpenseRepository,
	snr repositories.SnapshotRepository,
) ReportService {
	return &reportService{
		bookingRepo:  br,
		receiptRepo:  rr,
		saleRepo:     slr,
		expenseRepo:  er,
		snapshotRepo: snr,
	}
}

// reportInputs carries everything the composition step needs, fetched
// up front so the arithmetic itself stays free of I/O.
type reportInputs struct {
	bookingsCreated []models.Booking
	advances        []models.BookingAdvanceRow
	settlements     []models.BookingSettlementRow
	maaladharane    []models.SimpleReceipt
	gheeCoconut     []models.SimpleReceipt
	donations       []models.SimpleReceipt
	sales           []models.MerchandiseSale
	expenses        []models.Expense
}

func (s *reportService) BuildReport(fromDate, toDate string) (*models.PeriodReport, error) {
	from, to, err := parseDateRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}

	inputs, err := s.fetchInputs(from, to)
	if err != nil {
		return nil, err
	}
	report := composePeriodReport(from, to, inputs)
	return &report, nil
}

func (s *reportService) fetchInputs(from, to time.Time) (reportInputs, error) {
	var inputs reportInputs
	var err error

	if inputs.bookingsCreated, err = s.bookingRepo.GetBookingsCreatedBetween(from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch bookings for report: %w", err)
	}
	if inputs.advances, err = s.bookingRepo.GetAdvanceRowsBetween(from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch advance payments for report: %w", err)
	}
	if inputs.settlements, err = s.bookingRepo.GetSettlementRowsBetween(from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch settlements for report: %w", err)
	}
	if inputs.maaladharane, err = s.receiptRepo.GetReceiptsCreatedBetween(models.StreamMaaladharane, from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch maaladharane receipts for report: %w", err)
	}
	if inputs.gheeCoconut, err = s.receiptRepo.GetReceiptsCreatedBetween(models.StreamGheeCoconut, from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch ghee/coconut receipts for report: %w", err)
	}
	if inputs.donations, err = s.receiptRepo.GetReceiptsCreatedBetween(models.StreamDonation, from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch donation receipts for report: %w", err)
	}
	if inputs.sales, err = s.saleRepo.GetSalesCreatedBetween(from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch merchandise sales for report: %w", err)
	}
	if inputs.expenses, err = s.expenseRepo.GetExpensesCreatedBetween(from, to); err != nil {
		return inputs, fmt.Errorf("failed to fetch expenses for report: %w", err)
	}
	return inputs, nil
}

// composePeriodReport folds the fetched rows into the six stream lines
// and the reconciliation totals. The net balance is the counter's
// cash-in-hand: everything collected minus UPI receipts minus expenses.
func composePeriodReport(from, to time.Time, inputs reportInputs) models.PeriodReport {
	report := models.PeriodReport{
		FromDate:           from,
		ToDate:             to,
		BookingAdvances:    summarizeBookingAdvances(inputs.bookingsCreated, inputs.advances),
		BookingSettlements: summarizeSettlements(inputs.settlements),
		Maaladharane:       summarizeSimpleReceipts(inputs.maaladharane),
		GheeCoconut:        summarizeSimpleReceipts(inputs.gheeCoconut),
		Merchandise:        summarizeSales(inputs.sales),
		Donations:          summarizeSimpleReceipts(inputs.donations),
		Expenses:           inputs.expenses,
	}

	for _, summary := range []models.StreamSummary{
		report.BookingAdvances, report.BookingSettlements, report.Maaladharane,
		report.GheeCoconut, report.Merchandise, report.Donations,
	} {
		report.GrandTotal = report.GrandTotal.Add(summary.TotalAmount)
		report.CashGrandTotal = report.CashGrandTotal.Add(summary.CashAmount)
		report.UpiGrandTotal = report.UpiGrandTotal.Add(summary.UpiAmount)
	}
	for _, expense := range inputs.expenses {
		report.ExpenseTotal = report.ExpenseTotal.Add(expense.Amount)
	}
	report.NetBalance = report.GrandTotal.Sub(report.UpiGrandTotal).Sub(report.ExpenseTotal)
	return report
}

// summarizeBookingAdvances covers bookings created in the period: the
// receipt range and count come from the created bookings, while the
// money columns come from the advance payment events collected in the
// period. A booking settled in full at creation therefore counts here
// but contributes its money to the settlements line.
func summarizeBookingAdvances(created []models.Booking, advances []models.BookingAdvanceRow) models.StreamSummary {
	var summary models.StreamSummary
	if len(created) > 0 {
		summary.ReceiptRangeStart = created[0].ReceiptCode
		summary.ReceiptRangeEnd = created[len(created)-1].ReceiptCode
	}
	summary.Count = len(created)
	for _, row := range advances {
		summary.TotalAmount = summary.TotalAmount.Add(row.Amount)
		if row.Channel == models.ChannelUPI {
			summary.UpiAmount = summary.UpiAmount.Add(row.Amount)
		} else {
			summary.CashAmount = summary.CashAmount.Add(row.Amount)
		}
	}
	return summary
}

func summarizeSettlements(settlements []models.BookingSettlementRow) models.StreamSummary {
	var summary models.StreamSummary
	if len(settlements) > 0 {
		summary.ReceiptRangeStart = settlements[0].BalanceReceiptCode
		summary.ReceiptRangeEnd = settlements[len(settlements)-1].BalanceReceiptCode
	}
	summary.Count = len(settlements)
	for _, row := range settlements {
		summary.TotalAmount = summary.TotalAmount.Add(row.Amount)
		if row.Channel == models.ChannelUPI {
			summary.UpiAmount = summary.UpiAmount.Add(row.Amount)
		} else {
			summary.CashAmount = summary.CashAmount.Add(row.Amount)
		}
	}
	return summary
}

func summarizeSimpleReceipts(receipts []models.SimpleReceipt) models.StreamSummary {
	var summary models.StreamSummary
	if len(receipts) > 0 {
		summary.ReceiptRangeStart = receipts[0].ReceiptCode
		summary.ReceiptRangeEnd = receipts[len(receipts)-1].ReceiptCode
	}
	summary.Count = len(receipts)
	for _, receipt := range receipts {
		summary.TotalAmount = summary.TotalAmount.Add(receipt.TotalAmount)
		summary.CashAmount = summary.CashAmount.Add(receipt.CashAmount)
		summary.UpiAmount = summary.UpiAmount.Add(receipt.UpiAmount)
	}
	return summary
}

func summarizeSales(sales []models.MerchandiseSale) models.StreamSummary {
	var summary models.StreamSummary
	if len(sales) > 0 {
		summary.ReceiptRangeStart = sales[0].ReceiptCode
		summary.ReceiptRangeEnd = sales[len(sales)-1].ReceiptCode
	}
	summary.Count = len(sales)
	for _, sale := range sales {
		summary.TotalAmount = summary.TotalAmount.Add(sale.TotalAmount)
		summary.CashAmount = summary.CashAmount.Add(sale.CashAmount)
		summary.UpiAmount = summary.UpiAmount.Add(sale.UpiAmount)
	}
	return summary
}

func (s *reportService) SaveSnapshot(fromDate, toDate string) (*models.ReportSnapshot, error) {
	report, err := s.BuildReport(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	snapshot := &models.ReportSnapshot{
		FromDate:       report.FromDate,
		ToDate:         report.ToDate,
		GrandTotal:     report.GrandTotal,
		CashGrandTotal: report.CashGrandTotal,
		UpiGrandTotal:  report.UpiGrandTotal,
		ExpenseTotal:   report.ExpenseTotal,
		NetBalance:     report.NetBalance,
	}
	created, err := s.snapshotRepo.CreateSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to save report snapshot: %w", err)
	}
	return created, nil
}

func (s *reportService) GetSnapshots(page, pageSize int) ([]models.ReportSnapshot, int, error) {
	snapshots, totalCount, err := s.snapshotRepo.GetSnapshots(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get report snapshots: %w", err)
	}
	return snapshots, totalCount, nil
}
