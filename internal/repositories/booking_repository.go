package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/lib/pq"
)

// BookingRepository defines the database operations for irumudi bookings
// and their append-only payment events.
type BookingRepository interface {
	CreateBooking(executor SQLExecutor, booking *models.Booking) (*models.Booking, error)
	GetBookingByReceiptCode(code string) (*models.Booking, error)
	// GetBookingForUpdate locks the booking row for a settlement
	// read-modify-write; must run inside a transaction.
	GetBookingForUpdate(executor SQLExecutor, code string) (*models.Booking, error)
	// UpdateSettlementState persists the mutable payment-state columns.
	UpdateSettlementState(executor SQLExecutor, booking *models.Booking) error
	AddPayment(executor SQLExecutor, payment *models.BookingPayment) error
	GetPaymentsByBookingID(bookingID int64) ([]models.BookingPayment, error)
	GetBookings(filters models.BookingFilters) ([]models.Booking, int, error)
	// Report queries; rows come back in insertion order.
	GetBookingsCreatedBetween(from, to time.Time) ([]models.Booking, error)
	GetAdvanceRowsBetween(from, to time.Time) ([]models.BookingAdvanceRow, error)
	GetSettlementRowsBetween(from, to time.Time) ([]models.BookingSettlementRow, error)
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const selectBookingFields = `
	id, receipt_code, customer_name, contact, quantity, unit_price,
	total_amount, amount_paid, balance, cash_amount, upi_amount, status,
	advance_note, balance_receipt_code, created_date, scheduled_date,
	scheduled_time, settlement_date, created_at, updated_at`

func scanBookingRow(row scanner, isList bool) (*models.Booking, int, error) {
	var booking models.Booking
	var contact, balanceReceiptCode sql.NullString
	var settlementDate sql.NullTime
	var totalCount int

	scanDest := []interface{}{
		&booking.ID, &booking.ReceiptCode, &booking.CustomerName, &contact,
		&booking.Quantity, &booking.UnitPrice, &booking.TotalAmount,
		&booking.AmountPaid, &booking.Balance, &booking.CashAmount,
		&booking.UpiAmount, &booking.Status, &booking.AdvanceNote,
		&balanceReceiptCode, &booking.CreatedDate, &booking.ScheduledDate,
		&booking.ScheduledTime, &settlementDate, &booking.CreatedAt, &booking.UpdatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning booking: %v", ErrDatabaseError, err)
	}

	if contact.Valid {
		booking.Contact = &contact.String
	}
	if balanceReceiptCode.Valid {
		booking.BalanceReceiptCode = &balanceReceiptCode.String
	}
	if settlementDate.Valid {
		booking.SettlementDate = &settlementDate.Time
	}
	return &booking, totalCount, nil
}

func (r *bookingRepository) CreateBooking(executor SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	query := `INSERT INTO bookings
	            (receipt_code, customer_name, contact, quantity, unit_price, total_amount,
	             amount_paid, balance, cash_amount, upi_amount, status, advance_note,
	             balance_receipt_code, created_date, scheduled_date, scheduled_time,
	             settlement_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	booking.CreatedAt = currentTime
	booking.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		booking.ReceiptCode, booking.CustomerName, booking.Contact, booking.Quantity,
		booking.UnitPrice, booking.TotalAmount, booking.AmountPaid, booking.Balance,
		booking.CashAmount, booking.UpiAmount, booking.Status, booking.AdvanceNote,
		booking.BalanceReceiptCode, booking.CreatedDate, booking.ScheduledDate,
		booking.ScheduledTime, booking.SettlementDate, booking.CreatedAt, booking.UpdatedAt,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: receipt code '%s' (constraint: %s)", ErrDuplicateKey, booking.ReceiptCode, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: creating booking: %v", ErrDatabaseError, err)
	}
	return booking, nil
}

func (r *bookingRepository) GetBookingByReceiptCode(code string) (*models.Booking, error) {
	query := "SELECT " + selectBookingFields + " FROM bookings WHERE receipt_code = $1"
	booking, _, err := scanBookingRow(r.db.QueryRow(query, code), false)
	return booking, err
}

func (r *bookingRepository) GetBookingForUpdate(executor SQLExecutor, code string) (*models.Booking, error) {
	query := "SELECT " + selectBookingFields + " FROM bookings WHERE receipt_code = $1 FOR UPDATE"
	booking, _, err := scanBookingRow(executor.QueryRow(query, code), false)
	return booking, err
}

func (r *bookingRepository) UpdateSettlementState(executor SQLExecutor, booking *models.Booking) error {
	query := `UPDATE bookings SET
	            amount_paid = $1, balance = $2, cash_amount = $3, upi_amount = $4,
	            status = $5, advance_note = $6, balance_receipt_code = $7,
	            settlement_date = $8, updated_at = $9
	          WHERE id = $10
	          RETURNING updated_at`
	booking.UpdatedAt = time.Now()

	err := executor.QueryRow(query,
		booking.AmountPaid, booking.Balance, booking.CashAmount, booking.UpiAmount,
		booking.Status, booking.AdvanceNote, booking.BalanceReceiptCode,
		booking.SettlementDate, booking.UpdatedAt, booking.ID,
	).Scan(&booking.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: updating settlement state of booking %s: %v", ErrDatabaseError, booking.ReceiptCode, err)
	}
	return nil
}

func (r *bookingRepository) AddPayment(executor SQLExecutor, payment *models.BookingPayment) error {
	query := `INSERT INTO booking_payments (booking_id, amount, channel, kind, paid_on, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	payment.CreatedAt = time.Now()

	err := executor.QueryRow(query,
		payment.BookingID, payment.Amount, payment.Channel, payment.Kind,
		payment.PaidOn, payment.CreatedAt,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: recording booking payment: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *bookingRepository) GetPaymentsByBookingID(bookingID int64) ([]models.BookingPayment, error) {
	payments := []models.BookingPayment{}
	query := `SELECT id, booking_id, amount, channel, kind, paid_on, created_at
	          FROM booking_payments WHERE booking_id = $1 ORDER BY id`
	rows, err := r.db.Query(query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting payments for booking %d: %v", ErrDatabaseError, bookingID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.BookingPayment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Channel, &p.Kind, &p.PaidOn, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning booking payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking payments: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

func (r *bookingRepository) GetBookings(filters models.BookingFilters) ([]models.Booking, int, error) {
	bookings := []models.Booking{}
	var totalCount int

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + selectBookingFields + ", COUNT(*) OVER() AS total_count FROM bookings")

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.OutstandingOnly {
		conditions = append(conditions, "balance > 0")
	}
	if filters.ScheduledFrom != nil {
		conditions = append(conditions, fmt.Sprintf("scheduled_date >= $%d", argCount))
		args = append(args, *filters.ScheduledFrom)
		argCount++
	}
	if filters.ScheduledTo != nil {
		conditions = append(conditions, fmt.Sprintf("scheduled_date <= $%d", argCount))
		args = append(args, *filters.ScheduledTo)
		argCount++
	}
	if filters.ReceiptCodeFrom != nil {
		conditions = append(conditions, fmt.Sprintf("receipt_code >= $%d", argCount))
		args = append(args, *filters.ReceiptCodeFrom)
		argCount++
	}
	if filters.ReceiptCodeTo != nil {
		conditions = append(conditions, fmt.Sprintf("receipt_code <= $%d", argCount))
		args = append(args, *filters.ReceiptCodeTo)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY id")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.PageSize)
		argCount++
		if filters.Page > 0 {
			offset := (filters.Page - 1) * filters.PageSize
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying bookings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		booking, scannedTotalCount, scanErr := scanBookingRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		bookings = append(bookings, *booking)
		totalCount = scannedTotalCount
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	if len(bookings) == 0 {
		totalCount = 0
	}
	return bookings, totalCount, nil
}

func (r *bookingRepository) GetBookingsCreatedBetween(from, to time.Time) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := "SELECT " + selectBookingFields + " FROM bookings WHERE created_date BETWEEN $1 AND $2 ORDER BY id"
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: querying bookings created between %s and %s: %v",
			ErrDatabaseError, from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	for rows.Next() {
		booking, _, scanErr := scanBookingRow(rows, false)
		if scanErr != nil {
			return nil, scanErr
		}
		bookings = append(bookings, *booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, nil
}

func (r *bookingRepository) GetAdvanceRowsBetween(from, to time.Time) ([]models.BookingAdvanceRow, error) {
	advanceRows := []models.BookingAdvanceRow{}
	query := `SELECT b.receipt_code, bp.amount, bp.channel, bp.paid_on
	          FROM booking_payments bp
	          JOIN bookings b ON bp.booking_id = b.id
	          WHERE bp.kind = $1 AND bp.paid_on BETWEEN $2 AND $3
	          ORDER BY bp.id`
	rows, err := r.db.Query(query, models.PaymentKindAdvance, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: querying advance payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.BookingAdvanceRow
		if err := rows.Scan(&row.ReceiptCode, &row.Amount, &row.Channel, &row.PaidOn); err != nil {
			return nil, fmt.Errorf("%w: scanning advance payment row: %v", ErrDatabaseError, err)
		}
		advanceRows = append(advanceRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating advance payment rows: %v", ErrDatabaseError, err)
	}
	return advanceRows, nil
}

func (r *bookingRepository) GetSettlementRowsBetween(from, to time.Time) ([]models.BookingSettlementRow, error) {
	settlementRows := []models.BookingSettlementRow{}
	query := `SELECT COALESCE(b.balance_receipt_code, b.receipt_code), bp.amount, bp.channel, bp.paid_on
	          FROM booking_payments bp
	          JOIN bookings b ON bp.booking_id = b.id
	          WHERE bp.kind = $1 AND b.settlement_date BETWEEN $2 AND $3
	          ORDER BY bp.id`
	rows, err := r.db.Query(query, models.PaymentKindSettlement, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: querying settlement payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.BookingSettlementRow
		if err := rows.Scan(&row.BalanceReceiptCode, &row.Amount, &row.Channel, &row.SettledOn); err != nil {
			return nil, fmt.Errorf("%w: scanning settlement payment row: %v", ErrDatabaseError, err)
		}
		settlementRows = append(settlementRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating settlement payment rows: %v", ErrDatabaseError, err)
	}
	return settlementRows, nil
}
