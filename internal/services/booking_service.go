package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// PaymentRequest is one payment against a booking, either the advance
// collected at creation or a later balance payment.
type PaymentRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Channel string          `json:"channel" binding:"required"`
}

// CreateBookingRequest is used for creating a new irumudi booking.
type CreateBookingRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	Contact       *string         `json:"contact"`
	Quantity      int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	ScheduledDate string          `json:"scheduled_date" binding:"required"`
	ScheduledTime string          `json:"scheduled_time" binding:"required"`
	Advance       *PaymentRequest `json:"advance"`
}

// --- BookingService Interface ---

type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	RecordPayment(receiptCode string, req PaymentRequest) (*models.Booking, error)
	GetBookingByReceiptCode(receiptCode string) (*models.Booking, error)
	GetBookings(filters models.BookingFilters) ([]models.Booking, int, error)
}

type bookingService struct {
	bookingRepo  repositories.BookingRepository
	sequenceRepo repositories.SequenceRepository
	db           *sql.DB
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	br repositories.BookingRepository,
	sr repositories.SequenceRepository,
	db *sql.DB,
) BookingService {
	return &bookingService{
		bookingRepo:  br,
		sequenceRepo: sr,
		db:           db,
	}
}

// applyPayment mutates the booking's payment state for one payment and
// returns the corresponding event. The balance receipt code is NOT
// assigned here; a settlement triggered by a later payment gets its code
// from the caller, while a booking settled at creation keeps none.
func applyPayment(booking *models.Booking, amount decimal.Decimal, channel models.PaymentChannel, paidOn time.Time) (*models.BookingPayment, error) {
	if booking.Status == models.BookingStatusSettled {
		return nil, fmt.Errorf("%w: %s", ErrBookingAlreadySettled, booking.ReceiptCode)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidPaymentAmount, amount)
	}
	if amount.GreaterThan(booking.Balance) {
		return nil, fmt.Errorf("%w: amount %s exceeds outstanding balance %s", ErrInvalidPaymentAmount, amount, booking.Balance)
	}

	booking.AmountPaid = booking.AmountPaid.Add(amount)
	booking.Balance = booking.TotalAmount.Sub(booking.AmountPaid)
	switch channel {
	case models.ChannelUPI:
		booking.UpiAmount = booking.UpiAmount.Add(amount)
	default:
		booking.CashAmount = booking.CashAmount.Add(amount)
	}

	kind := models.PaymentKindAdvance
	if booking.Balance.IsZero() {
		kind = models.PaymentKindSettlement
		booking.Status = models.BookingStatusSettled
		booking.AdvanceNote = models.SettledAdvanceNote
		settledOn := paidOn
		booking.SettlementDate = &settledOn
	} else {
		booking.Status = models.BookingStatusPartiallyPaid
		booking.AdvanceNote = models.FormatAdvanceNote(amount, channel)
	}

	return &models.BookingPayment{
		BookingID: booking.ID,
		Amount:    amount,
		Channel:   channel,
		Kind:      kind,
		PaidOn:    paidOn,
	}, nil
}

func (s *bookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", ErrValidation)
	}
	scheduledDate, err := parseDate("scheduled_date", req.ScheduledDate)
	if err != nil {
		return nil, err
	}
	if req.Advance != nil && !models.IsValidPaymentChannel(req.Advance.Channel) {
		return nil, fmt.Errorf("%w: unknown payment channel '%s'", ErrValidation, req.Advance.Channel)
	}

	now := time.Now()
	totalAmount := req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	booking := &models.Booking{
		CustomerName:  req.CustomerName,
		Contact:       req.Contact,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		TotalAmount:   totalAmount,
		Balance:       totalAmount,
		Status:        models.BookingStatusAwaitingPayment,
		CreatedDate:   now,
		ScheduledDate: scheduledDate,
		ScheduledTime: req.ScheduledTime,
	}

	var payment *models.BookingPayment
	if req.Advance != nil {
		payment, err = applyPayment(booking, req.Advance.Amount, models.PaymentChannel(req.Advance.Channel), now)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	// The sequence bump holds a row lock until commit, so codes are
	// monotonic. A duplicate can still surface if the sequence row was
	// tampered with; reallocate once, then give up.
	created, err := s.insertWithFreshCode(tx, booking)
	if err != nil {
		return nil, err
	}

	if payment != nil {
		payment.BookingID = created.ID
		if err := s.bookingRepo.AddPayment(tx, payment); err != nil {
			return nil, err
		}
		created.Payments = []models.BookingPayment{*payment}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking transaction: %w", err)
	}
	return created, nil
}

func (s *bookingService) insertWithFreshCode(tx *sql.Tx, booking *models.Booking) (*models.Booking, error) {
	for attempt := 0; attempt < 2; attempt++ {
		code, err := s.sequenceRepo.NextReceiptCode(tx, models.StreamBooking)
		if err != nil {
			return nil, err
		}
		booking.ReceiptCode = code

		created, err := s.bookingRepo.CreateBooking(tx, booking)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: stream %s", ErrAllocationConflict, models.StreamBooking)
}

func (s *bookingService) RecordPayment(receiptCode string, req PaymentRequest) (*models.Booking, error) {
	if !models.IsValidPaymentChannel(req.Channel) {
		return nil, fmt.Errorf("%w: unknown payment channel '%s'", ErrValidation, req.Channel)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := s.bookingRepo.GetBookingForUpdate(tx, receiptCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, receiptCode)
		}
		return nil, err
	}
	if !booking.CashAmount.Add(booking.UpiAmount).Equal(booking.AmountPaid) {
		return nil, fmt.Errorf("%w: booking %s channel split %s + %s does not match amount paid %s",
			ErrCorruptLedgerRecord, receiptCode, booking.CashAmount, booking.UpiAmount, booking.AmountPaid)
	}

	payment, err := applyPayment(booking, req.Amount, models.PaymentChannel(req.Channel), time.Now())
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusSettled && booking.BalanceReceiptCode == nil {
		balanceCode := models.BalanceReceiptCode(booking.ReceiptCode)
		booking.BalanceReceiptCode = &balanceCode
	}

	if err := s.bookingRepo.AddPayment(tx, payment); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdateSettlementState(tx, booking); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment transaction: %w", err)
	}

	payments, err := s.bookingRepo.GetPaymentsByBookingID(booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Payments = payments
	return booking, nil
}

func (s *bookingService) GetBookingByReceiptCode(receiptCode string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByReceiptCode(receiptCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, receiptCode)
		}
		return nil, err
	}
	payments, err := s.bookingRepo.GetPaymentsByBookingID(booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Payments = payments
	return booking, nil
}

func (s *bookingService) GetBookings(filters models.BookingFilters) ([]models.Booking, int, error) {
	if filters.ScheduledFrom != nil && filters.ScheduledTo != nil && filters.ScheduledFrom.After(*filters.ScheduledTo) {
		return nil, 0, fmt.Errorf("%w: scheduled_from is after scheduled_to", ErrInvalidDateRange)
	}
	if filters.ReceiptCodeFrom != nil && filters.ReceiptCodeTo != nil && *filters.ReceiptCodeFrom > *filters.ReceiptCodeTo {
		return nil, 0, fmt.Errorf("%w: receipt_from is after receipt_to", ErrValidation)
	}
	bookings, totalCount, err := s.bookingRepo.GetBookings(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, totalCount, nil
}
