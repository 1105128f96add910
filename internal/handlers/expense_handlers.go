package handlers

import (
	"net/http"

	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler holds the expense service.
type ExpenseHandler struct {
	expenseService services.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(es services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es}
}

// CreateExpense handles recording a cash outflow.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req services.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateExpense: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		respondServiceError(c, err, "CreateExpense: Error from expenseService.CreateExpense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GetExpenses handles listing expenses, newest first.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	expenses, totalCount, err := h.expenseService.GetExpenses(page, pageSize)
	if err != nil {
		respondServiceError(c, err, "GetExpenses: Error from expenseService.GetExpenses")
		return
	}
	respondPaginated(c, expenses, totalCount, page, pageSize)
}
