package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetapp/internal/analytics"
	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
	"budgetapp/internal/services"
)

// TransactionHandler serves the ledger: adding transactions and the
// filtered, paged and grouped views over it.
type TransactionHandler struct {
	ledger services.LedgerServicer
	now    func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, now: time.Now}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Amount   json.Number            `json:"amount" binding:"required" swaggertype:"number"`
	Type     models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category models.CategoryType    `json:"category" binding:"required,category"`
	Title    string                 `json:"title" binding:"required,max=200"`
	Date     string                 `json:"date" binding:"omitempty,civil_date"`
	Time     string                 `json:"time" binding:"omitempty,clock_time"`
	Note     string                 `json:"note" binding:"max=1000"`
}

func (r CreateTransactionRequest) input() models.TransactionInput {
	return models.TransactionInput{
		Amount:   r.Amount.String(),
		Type:     r.Type,
		Category: r.Category,
		Title:    r.Title,
		Date:     r.Date,
		Time:     r.Time,
		Note:     r.Note,
	}
}

// LedgerResponse wraps the ledger state
type LedgerResponse struct {
	Ledger services.LedgerState `json:"ledger"`
}

// GroupedResponse wraps the date-grouped history
type GroupedResponse struct {
	Filter string                `json:"filter"`
	Groups []analytics.DateGroup `json:"groups"`
}

// GetLedger returns the current ledger state
// @Summary     Get ledger state
// @Description Get every transaction in insertion order with the loading flag and the last error
// @Tags        ledger
// @Produce     json
// @Success     200 {object} LedgerResponse "Ledger state"
// @Router      /ledger [get]
func (h *TransactionHandler) GetLedger(c *gin.Context) {
	c.JSON(http.StatusOK, LedgerResponse{Ledger: h.ledger.CurrentState()})
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Add a transaction
// @Description Validate a transaction, persist it locally, then append it to the ledger
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := models.NewTransaction(req.input(), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledger.AddTransaction(c.Request.Context(), tx); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// ListTransactions returns a page of the filtered ledger
// @Summary     List transactions
// @Description Get a paginated list of ledger transactions in insertion order, optionally filtered
// @Tags        transactions
// @Produce     json
// @Param       filter    query string false "all, income, expense or a category"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txs := analytics.ApplyFilter(h.ledger.CurrentState().Transactions, filter)
	c.JSON(http.StatusOK, pagination.Window(txs, page))
}

// GetGroupedTransactions returns the filtered ledger grouped by date
// @Summary     Transaction history
// @Description Group the filtered ledger by date; today's group is labeled "Today"
// @Tags        transactions
// @Produce     json
// @Param       filter query string false "all, income, expense or a category"
// @Success     200 {object} GroupedResponse "Grouped history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/grouped [get]
func (h *TransactionHandler) GetGroupedTransactions(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txs := analytics.ApplyFilter(h.ledger.CurrentState().Transactions, filter)
	c.JSON(http.StatusOK, GroupedResponse{
		Filter: filter.String(),
		Groups: analytics.GroupByDate(txs, models.DateOf(h.now())),
	})
}

// GetSummary returns income, expense, balance and category totals
// @Summary     Ledger summary
// @Description Totals by type and category plus the spending breakdown
// @Tags        summary
// @Produce     json
// @Success     200 {object} analytics.Summary "Summary"
// @Router      /summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	summary := analytics.Summarize(h.ledger.CurrentState().Transactions)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func parseFilter(c *gin.Context) (analytics.Filter, error) {
	filter, err := analytics.ParseFilter(c.Query("filter"))
	if err != nil {
		return analytics.Filter{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return filter, nil
}
