package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/lib/pq"
)

// ReceiptRepository defines the database operations for the simple
// revenue streams (maaladharane, ghee/coconut, donation).
type ReceiptRepository interface {
	CreateReceipt(executor SQLExecutor, receipt *models.SimpleReceipt) (*models.SimpleReceipt, error)
	GetReceiptByCode(code string) (*models.SimpleReceipt, error)
	GetReceipts(stream models.Stream, page, pageSize int) ([]models.SimpleReceipt, int, error)
	GetReceiptsCreatedBetween(stream models.Stream, from, to time.Time) ([]models.SimpleReceipt, error)
}

type receiptRepository struct {
	db *sql.DB
}

// NewReceiptRepository creates a new instance of ReceiptRepository.
func NewReceiptRepository(db *sql.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

const selectReceiptFields = `id, stream, receipt_code, customer_name, contact,
	total_amount, cash_amount, upi_amount, created_date, created_at`

func scanReceiptRow(row scanner, isList bool) (*models.SimpleReceipt, int, error) {
	var receipt models.SimpleReceipt
	var contact sql.NullString
	var totalCount int

	scanDest := []interface{}{
		&receipt.ID, &receipt.Stream, &receipt.ReceiptCode, &receipt.CustomerName,
		&contact, &receipt.TotalAmount, &receipt.CashAmount, &receipt.UpiAmount,
		&receipt.CreatedDate, &receipt.CreatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning receipt: %v", ErrDatabaseError, err)
	}
	if contact.Valid {
		receipt.Contact = &contact.String
	}
	return &receipt, totalCount, nil
}

func (r *receiptRepository) CreateReceipt(executor SQLExecutor, receipt *models.SimpleReceipt) (*models.SimpleReceipt, error) {
	query := `INSERT INTO simple_receipts
	            (stream, receipt_code, customer_name, contact, total_amount,
	             cash_amount, upi_amount, created_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id, created_at`
	receipt.CreatedAt = time.Now()

	err := executor.QueryRow(query,
		receipt.Stream, receipt.ReceiptCode, receipt.CustomerName, receipt.Contact,
		receipt.TotalAmount, receipt.CashAmount, receipt.UpiAmount,
		receipt.CreatedDate, receipt.CreatedAt,
	).Scan(&receipt.ID, &receipt.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: receipt code '%s' (constraint: %s)", ErrDuplicateKey, receipt.ReceiptCode, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: creating %s receipt: %v", ErrDatabaseError, receipt.Stream, err)
	}
	return receipt, nil
}

func (r *receiptRepository) GetReceiptByCode(code string) (*models.SimpleReceipt, error) {
	query := "SELECT " + selectReceiptFields + " FROM simple_receipts WHERE receipt_code = $1"
	receipt, _, err := scanReceiptRow(r.db.QueryRow(query, code), false)
	return receipt, err
}

func (r *receiptRepository) GetReceipts(stream models.Stream, page, pageSize int) ([]models.SimpleReceipt, int, error) {
	receipts := []models.SimpleReceipt{}
	totalCount := 0
	query := "SELECT " + selectReceiptFields + `, COUNT(*) OVER() AS total_count
	          FROM simple_receipts
	          WHERE stream = $1
	          ORDER BY id
	          LIMIT $2 OFFSET $3`
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(query, stream, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying %s receipts: %v", ErrDatabaseError, stream, err)
	}
	defer rows.Close()

	for rows.Next() {
		receipt, scannedTotalCount, scanErr := scanReceiptRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		receipts = append(receipts, *receipt)
		totalCount = scannedTotalCount
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating receipt rows: %v", ErrDatabaseError, err)
	}
	return receipts, totalCount, nil
}

func (r *receiptRepository) GetReceiptsCreatedBetween(stream models.Stream, from, to time.Time) ([]models.SimpleReceipt, error) {
	receipts := []models.SimpleReceipt{}
	query := "SELECT " + selectReceiptFields + ` FROM simple_receipts
	          WHERE stream = $1 AND created_date BETWEEN $2 AND $3
	          ORDER BY id`
	rows, err := r.db.Query(query, stream, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s receipts between %s and %s: %v",
			ErrDatabaseError, stream, from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	for rows.Next() {
		receipt, _, scanErr := scanReceiptRow(rows, false)
		if scanErr != nil {
			return nil, scanErr
		}
		receipts = append(receipts, *receipt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating receipt rows: %v", ErrDatabaseError, err)
	}
	return receipts, nil
}
