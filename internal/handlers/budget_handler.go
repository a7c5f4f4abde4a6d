package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/services"
)

// BudgetHandler serves the budget board.
type BudgetHandler struct {
	budgets services.BudgetServicer
	ledger  services.LedgerServicer
	now     func() time.Time
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets services.BudgetServicer, ledger services.LedgerServicer) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, ledger: ledger, now: time.Now}
}

// SetLimitRequest represents the request payload for changing a category limit
type SetLimitRequest struct {
	Limit json.Number `json:"limit" binding:"required" swaggertype:"number"`
}

// GetBudget returns the budget overview for the current month
// @Summary     Budget overview
// @Description Budget categories with spending from the ledger, totals and days left in the month
// @Tags        budget
// @Produce     json
// @Success     200 {object} services.BudgetOverview "Budget overview"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	overview := h.budgets.Overview(h.ledger.CurrentState().Transactions, h.now())
	c.JSON(http.StatusOK, gin.H{"budget": overview})
}

// SetLimit changes the limit of one budget category
// @Summary     Set a category limit
// @Description Change the spending limit of a budget category
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Budget category ID"
// @Param       request body SetLimitRequest true "New limit"
// @Success     200 {object} models.BudgetCategory "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget category not found"
// @Router      /budget/categories/{id} [put]
func (h *BudgetHandler) SetLimit(c *gin.Context) {
	var req SetLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	limit, err := parseLimit(req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.budgets.SetLimit(c.Param("id"), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	for _, cat := range h.budgets.Categories(h.ledger.CurrentState().Transactions) {
		if cat.ID == updated.ID {
			updated.Spent = cat.Spent
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"category": updated})
}
