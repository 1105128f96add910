package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
)

// ExpenseRepository defines the database operations for expenses.
type ExpenseRepository interface {
	CreateExpense(expense *models.Expense) (*models.Expense, error)
	GetExpenses(page, pageSize int) ([]models.Expense, int, error)
	GetExpensesCreatedBetween(from, to time.Time) ([]models.Expense, error)
}

type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new instance of ExpenseRepository.
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	query := `INSERT INTO expenses (description, amount, created_date, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	expense.CreatedAt = time.Now()

	err := r.db.QueryRow(query,
		expense.Description, expense.Amount, expense.CreatedDate, expense.CreatedAt,
	).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: creating expense: %v", ErrDatabaseError, err)
	}
	return expense, nil
}

func (r *expenseRepository) GetExpenses(page, pageSize int) ([]models.Expense, int, error) {
	expenses := []models.Expense{}
	totalCount := 0
	query := `SELECT id, description, amount, created_date, created_at, COUNT(*) OVER() AS total_count
	          FROM expenses
	          ORDER BY id DESC
	          LIMIT $1 OFFSET $2`
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying expenses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount,
			&expense.CreatedDate, &expense.CreatedAt, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
		}
		expenses = append(expenses, expense)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, totalCount, nil
}

func (r *expenseRepository) GetExpensesCreatedBetween(from, to time.Time) ([]models.Expense, error) {
	expenses := []models.Expense{}
	query := `SELECT id, description, amount, created_date, created_at
	          FROM expenses
	          WHERE created_date BETWEEN $1 AND $2
	          ORDER BY id`
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expenses between %s and %s: %v",
			ErrDatabaseError, from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount,
			&expense.CreatedDate, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
		}
		expenses = append(expenses, expense)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, nil
}
