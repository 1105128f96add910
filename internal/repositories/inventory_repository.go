package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"

	"github.com/lib/pq"
)

// InventoryRepository defines the database operations for merchandise
// items and their stock levels.
type InventoryRepository interface {
	UpsertItem(executor SQLExecutor, item *models.InventoryItem) (*models.InventoryItem, error)
	GetItemByName(name string) (*models.InventoryItem, error)
	// GetItemForUpdate locks the item row; must run inside a transaction.
	GetItemForUpdate(executor SQLExecutor, name string) (*models.InventoryItem, error)
	// DecrementStock re-validates sufficiency in the UPDATE guard and
	// returns the new stock level, or ErrStockConflict when the guard
	// matches no row.
	DecrementStock(executor SQLExecutor, name string, quantity int) (int, error)
	GetStock(name string) (int, error)
	GetItems(page, pageSize int) ([]models.InventoryItem, int, error)
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func scanInventoryItem(row scanner, item *models.InventoryItem) error {
	return row.Scan(&item.ID, &item.Name, &item.UnitCost, &item.UnitPrice,
		&item.StockQuantity, &item.CreatedAt, &item.UpdatedAt)
}

const selectInventoryFields = `id, name, unit_cost, unit_price, stock_quantity, created_at, updated_at`

func (r *inventoryRepository) UpsertItem(executor SQLExecutor, item *models.InventoryItem) (*models.InventoryItem, error) {
	// Restocking an existing item adds to its stock; prices are replaced.
	query := `INSERT INTO inventory_items (name, unit_cost, unit_price, stock_quantity, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $5)
	          ON CONFLICT (name) DO UPDATE SET
	            unit_cost = EXCLUDED.unit_cost,
	            unit_price = EXCLUDED.unit_price,
	            stock_quantity = inventory_items.stock_quantity + EXCLUDED.stock_quantity,
	            updated_at = EXCLUDED.updated_at
	          RETURNING ` + selectInventoryFields

	stored := &models.InventoryItem{}
	err := scanInventoryItem(executor.QueryRow(query,
		item.Name, item.UnitCost, item.UnitPrice, item.StockQuantity, time.Now()), stored)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "check_violation" {
			return nil, fmt.Errorf("%w: restock would drive stock of '%s' negative", ErrStockConflict, item.Name)
		}
		return nil, fmt.Errorf("%w: upserting inventory item '%s': %v", ErrDatabaseError, item.Name, err)
	}
	return stored, nil
}

func (r *inventoryRepository) GetItemByName(name string) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT ` + selectInventoryFields + ` FROM inventory_items WHERE name = $1`
	err := scanInventoryItem(r.db.QueryRow(query, name), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory item '%s': %v", ErrDatabaseError, name, err)
	}
	return item, nil
}

func (r *inventoryRepository) GetItemForUpdate(executor SQLExecutor, name string) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT ` + selectInventoryFields + ` FROM inventory_items WHERE name = $1 FOR UPDATE`
	err := scanInventoryItem(executor.QueryRow(query, name), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: locking inventory item '%s': %v", ErrDatabaseError, name, err)
	}
	return item, nil
}

func (r *inventoryRepository) DecrementStock(executor SQLExecutor, name string, quantity int) (int, error) {
	query := `UPDATE inventory_items
	          SET stock_quantity = stock_quantity - $1, updated_at = $2
	          WHERE name = $3 AND stock_quantity >= $1
	          RETURNING stock_quantity`
	var newStock int
	err := executor.QueryRow(query, quantity, time.Now(), name).Scan(&newStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: item '%s', requested %d", ErrStockConflict, name, quantity)
		}
		return 0, fmt.Errorf("%w: decrementing stock for '%s': %v", ErrDatabaseError, name, err)
	}
	return newStock, nil
}

func (r *inventoryRepository) GetStock(name string) (int, error) {
	var stock int
	err := r.db.QueryRow(`SELECT stock_quantity FROM inventory_items WHERE name = $1`, name).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: getting stock for '%s': %v", ErrDatabaseError, name, err)
	}
	return stock, nil
}

func (r *inventoryRepository) GetItems(page, pageSize int) ([]models.InventoryItem, int, error) {
	items := []models.InventoryItem{}
	totalCount := 0
	query := `SELECT ` + selectInventoryFields + `, COUNT(*) OVER() AS total_count
	          FROM inventory_items
	          ORDER BY name
	          LIMIT $1 OFFSET $2`
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting inventory items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.UnitCost, &item.UnitPrice,
			&item.StockQuantity, &item.CreatedAt, &item.UpdatedAt, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating inventory items: %v", ErrDatabaseError, err)
	}
	return items, totalCount, nil
}
