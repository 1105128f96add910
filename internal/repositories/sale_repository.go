package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/lib/pq"
)

// SaleRepository defines the database operations for merchandise sales.
type SaleRepository interface {
	// CreateSale inserts the sale header and its line items; must run in
	// the same transaction as the stock decrements.
	CreateSale(executor SQLExecutor, sale *models.MerchandiseSale) (*models.MerchandiseSale, error)
	GetSaleByReceiptCode(code string) (*models.MerchandiseSale, error)
	GetSalesCreatedBetween(from, to time.Time) ([]models.MerchandiseSale, error)
}

type saleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateSale(executor SQLExecutor, sale *models.MerchandiseSale) (*models.MerchandiseSale, error) {
	query := `INSERT INTO merchandise_sales
	            (receipt_code, total_amount, cash_amount, upi_amount, created_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	sale.CreatedAt = time.Now()

	err := executor.QueryRow(query,
		sale.ReceiptCode, sale.TotalAmount, sale.CashAmount, sale.UpiAmount,
		sale.CreatedDate, sale.CreatedAt,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: receipt code '%s' (constraint: %s)", ErrDuplicateKey, sale.ReceiptCode, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: creating merchandise sale: %v", ErrDatabaseError, err)
	}

	lineQuery := `INSERT INTO sale_line_items
	                (sale_id, item_name, quantity, unit_price_at_sale, line_total)
	              VALUES ($1, $2, $3, $4, $5)
	              RETURNING id`
	for i := range sale.LineItems {
		li := &sale.LineItems[i]
		li.SaleID = sale.ID
		if err := executor.QueryRow(lineQuery,
			li.SaleID, li.ItemName, li.Quantity, li.UnitPriceAtSale, li.LineTotal,
		).Scan(&li.ID); err != nil {
			return nil, fmt.Errorf("%w: creating sale line item '%s': %v", ErrDatabaseError, li.ItemName, err)
		}
	}
	return sale, nil
}

func (r *saleRepository) GetSaleByReceiptCode(code string) (*models.MerchandiseSale, error) {
	sale := &models.MerchandiseSale{}
	query := `SELECT id, receipt_code, total_amount, cash_amount, upi_amount, created_date, created_at
	          FROM merchandise_sales WHERE receipt_code = $1`
	err := r.db.QueryRow(query, code).Scan(&sale.ID, &sale.ReceiptCode, &sale.TotalAmount,
		&sale.CashAmount, &sale.UpiAmount, &sale.CreatedDate, &sale.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting sale '%s': %v", ErrDatabaseError, code, err)
	}

	lineItems, err := r.getLineItems([]int64{sale.ID})
	if err != nil {
		return nil, err
	}
	sale.LineItems = lineItems[sale.ID]
	return sale, nil
}

func (r *saleRepository) GetSalesCreatedBetween(from, to time.Time) ([]models.MerchandiseSale, error) {
	sales := []models.MerchandiseSale{}
	query := `SELECT id, receipt_code, total_amount, cash_amount, upi_amount, created_date, created_at
	          FROM merchandise_sales
	          WHERE created_date BETWEEN $1 AND $2
	          ORDER BY id`
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sales between %s and %s: %v",
			ErrDatabaseError, from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	saleIDs := []int64{}
	for rows.Next() {
		var sale models.MerchandiseSale
		if err := rows.Scan(&sale.ID, &sale.ReceiptCode, &sale.TotalAmount,
			&sale.CashAmount, &sale.UpiAmount, &sale.CreatedDate, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning sale row: %v", ErrDatabaseError, err)
		}
		sales = append(sales, sale)
		saleIDs = append(saleIDs, sale.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale rows: %v", ErrDatabaseError, err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	lineItems, err := r.getLineItems(saleIDs)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].LineItems = lineItems[sales[i].ID]
	}
	return sales, nil
}

func (r *saleRepository) getLineItems(saleIDs []int64) (map[int64][]models.SaleLineItem, error) {
	byID := make(map[int64][]models.SaleLineItem, len(saleIDs))
	query := `SELECT id, sale_id, item_name, quantity, unit_price_at_sale, line_total
	          FROM sale_line_items
	          WHERE sale_id = ANY($1)
	          ORDER BY id`
	rows, err := r.db.Query(query, pq.Array(saleIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: querying sale line items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var li models.SaleLineItem
		if err := rows.Scan(&li.ID, &li.SaleID, &li.ItemName, &li.Quantity,
			&li.UnitPriceAtSale, &li.LineTotal); err != nil {
			return nil, fmt.Errorf("%w: scanning sale line item: %v", ErrDatabaseError, err)
		}
		byID[li.SaleID] = append(byID[li.SaleID], li)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale line items: %v", ErrDatabaseError, err)
	}
	return byID, nil
}
