package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
	"budgetapp/internal/services"
)

// RemoteHandler exposes CRUD against the remote backend. It does not touch
// the local ledger.
type RemoteHandler struct {
	remote services.RemoteServicer
	now    func() time.Time
}

// NewRemoteHandler creates a new RemoteHandler.
func NewRemoteHandler(remote services.RemoteServicer) *RemoteHandler {
	return &RemoteHandler{remote: remote, now: time.Now}
}

// CreateTransaction inserts a transaction remotely
// @Summary     Create a remote transaction
// @Tags        remote
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Remote backend disabled"
// @Failure     502 {object} ErrorResponse "Remote backend error"
// @Router      /remote/transactions [post]
func (h *RemoteHandler) CreateTransaction(c *gin.Context) {
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

	created, err := h.remote.CreateTransaction(c.Request.Context(), tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": created})
}

// ListTransactions returns every remote transaction
// @Summary     List remote transactions
// @Description Every remote transaction, newest date first
// @Tags        remote
// @Produce     json
// @Success     200 {array}  models.Transaction "Transactions"
// @Failure     404 {object} ErrorResponse "Remote backend disabled"
// @Failure     502 {object} ErrorResponse "Remote backend error"
// @Router      /remote/transactions [get]
func (h *RemoteHandler) ListTransactions(c *gin.Context) {
	txs, err := h.remote.ListTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// ListTransactionsPage returns one page of remote transactions
// @Summary     Page remote transactions
// @Tags        remote
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Remote backend error"
// @Router      /remote/transactions/page [get]
func (h *RemoteHandler) ListTransactionsPage(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.remote.ListTransactionsPage(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateTransaction overwrites a remote transaction
// @Summary     Update a remote transaction
// @Description Overwrite the row with the given id; a missing row is not an error
// @Tags        remote
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Remote backend error"
// @Router      /remote/transactions/{id} [put]
func (h *RemoteHandler) UpdateTransaction(c *gin.Context) {
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
	tx.ID = c.Param("id")

	updated, err := h.remote.UpdateTransaction(c.Request.Context(), tx)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": updated})
}

// DeleteTransaction removes a remote transaction
// @Summary     Delete a remote transaction
// @Tags        remote
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     502 {object} ErrorResponse "Remote backend error"
// @Router      /remote/transactions/{id} [delete]
func (h *RemoteHandler) DeleteTransaction(c *gin.Context) {
	if err := h.remote.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}
