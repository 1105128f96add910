package services

import (
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/repositories"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest records a write-once cash outflow.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

type ExpenseService interface {
	CreateExpense(req CreateExpenseRequest) (*models.Expense, error)
	GetExpenses(page, pageSize int) ([]models.Expense, int, error)
}

type expenseService struct {
	expenseRepo repositories.ExpenseRepository
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(er repositories.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: er}
}

func (s *expenseService) CreateExpense(req CreateExpenseRequest) (*models.Expense, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", ErrValidation)
	}

	expense := &models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		CreatedDate: time.Now(),
	}
	created, err := s.expenseRepo.CreateExpense(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

func (s *expenseService) GetExpenses(page, pageSize int) ([]models.Expense, int, error) {
	expenses, totalCount, err := s.expenseRepo.GetExpenses(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, totalCount, nil
}
