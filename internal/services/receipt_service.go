package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest is used for recording a maaladharane, ghee/coconut
// or donation receipt. The channel split is fixed at creation.
type CreateReceiptRequest struct {
	CustomerName string          `json:"customer_name" binding:"required"`
	Contact      *string         `json:"contact"`
	TotalAmount  decimal.Decimal `json:"total_amount" binding:"required"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	UpiAmount    decimal.Decimal `json:"upi_amount"`
}

// ReceiptService handles the simple revenue streams and cross-stream
// receipt lookup.
type ReceiptService interface {
	CreateReceipt(stream models.Stream, req CreateReceiptRequest) (*models.SimpleReceipt, error)
	GetReceipts(stream models.Stream, page, pageSize int) ([]models.SimpleReceipt, int, error)
	// LookupDocument resolves any receipt code, including BRN- settlement
	// codes, to its printable document.
	LookupDocument(receiptCode string) (*models.ReceiptDocument, error)
}

type receiptService struct {
	receiptRepo  repositories.ReceiptRepository
	bookingRepo  repositories.BookingRepository
	saleRepo     repositories.SaleRepository
	sequenceRepo repositories.SequenceRepository
	db           *sql.DB
}

// NewReceiptService creates a new instance of ReceiptService.
func NewReceiptService(
	rr repositories.ReceiptRepository,
	br repositories.BookingRepository,
	slr repositories.SaleRepository,
	sr repositories.SequenceRepository,
	db *sql.DB,
) ReceiptService {
	return &receiptService{
		receiptRepo:  rr,
		bookingRepo:  br,
		saleRepo:     slr,
		sequenceRepo: sr,
		db:           db,
	}
}

func (s *receiptService) CreateReceipt(stream models.Stream, req CreateReceiptRequest) (*models.SimpleReceipt, error) {
	if !models.IsSimpleReceiptStream(stream) {
		return nil, fmt.Errorf("%w: stream '%s' does not take simple receipts", ErrValidation, stream)
	}
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrValidation)
	}
	if req.CashAmount.IsNegative() || req.UpiAmount.IsNegative() {
		return nil, fmt.Errorf("%w: channel amounts must not be negative", ErrValidation)
	}
	if !req.CashAmount.Add(req.UpiAmount).Equal(req.TotalAmount) {
		return nil, fmt.Errorf("%w: %s + %s != %s", ErrChannelSplitMismatch, req.CashAmount, req.UpiAmount, req.TotalAmount)
	}

	receipt := &models.SimpleReceipt{
		Stream:       stream,
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		TotalAmount:  req.TotalAmount,
		CashAmount:   req.CashAmount,
		UpiAmount:    req.UpiAmount,
		CreatedDate:  time.Now(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	for attempt := 0; attempt < 2; attempt++ {
		code, err := s.sequenceRepo.NextReceiptCode(tx, stream)
		if err != nil {
			return nil, err
		}
		receipt.ReceiptCode = code

		created, err := s.receiptRepo.CreateReceipt(tx, receipt)
		if err == nil {
			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("failed to commit receipt transaction: %w", err)
			}
			return created, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: stream %s", ErrAllocationConflict, stream)
}

func (s *receiptService) GetReceipts(stream models.Stream, page, pageSize int) ([]models.SimpleReceipt, int, error) {
	if !models.IsSimpleReceiptStream(stream) {
		return nil, 0, fmt.Errorf("%w: stream '%s' does not take simple receipts", ErrValidation, stream)
	}
	receipts, totalCount, err := s.receiptRepo.GetReceipts(stream, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get %s receipts: %w", stream, err)
	}
	return receipts, totalCount, nil
}

func (s *receiptService) LookupDocument(receiptCode string) (*models.ReceiptDocument, error) {
	code := strings.TrimSpace(receiptCode)

	if settled, ok := strings.CutPrefix(code, "BRN-"); ok {
		booking, err := s.bookingRepo.GetBookingByReceiptCode(settled)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, code)
			}
			return nil, err
		}
		doc := booking.SettlementDocument()
		return &doc, nil
	}

	prefix, _, found := strings.Cut(code, "-")
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, code)
	}

	switch prefix {
	case models.StreamBooking.Prefix():
		booking, err := s.bookingRepo.GetBookingByReceiptCode(code)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, code)
			}
			return nil, err
		}
		doc := booking.Document()
		return &doc, nil
	case models.StreamMerchandise.Prefix():
		sale, err := s.saleRepo.GetSaleByReceiptCode(code)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, code)
			}
			return nil, err
		}
		doc := sale.Document()
		return &doc, nil
	default:
		receipt, err := s.receiptRepo.GetReceiptByCode(code)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, code)
			}
			return nil, err
		}
		doc := receipt.Document()
		return &doc, nil
	}
}
