package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetapp/internal/analytics"
	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
)

// LedgerState is a point-in-time copy of the ledger. Error is empty when the
// most recent load or add succeeded and no earlier failure is on record.
type LedgerState struct {
	Transactions []models.Transaction `json:"transactions"`
	Loading      bool                 `json:"loading"`
	Error        string               `json:"error,omitempty"`
}

// LedgerServicer defines the contract for the in-memory transaction ledger
// backed by the local store.
type LedgerServicer interface {
	Initialize(ctx context.Context) error
	AddTransaction(ctx context.Context, tx models.Transaction) error
	ClearTransactions(ctx context.Context) error
	CurrentState() LedgerState
}

// BudgetOverview is the budget screen: every category with its spending,
// the totals across them and the month they are reported for.
type BudgetOverview struct {
	Month      string                  `json:"month"`
	Categories []models.BudgetCategory `json:"categories"`
	Metrics    analytics.Metrics       `json:"metrics"`
}

// BudgetServicer defines the contract for the budget category board.
type BudgetServicer interface {
	Categories(txs []models.Transaction) []models.BudgetCategory
	SetLimit(id string, limit decimal.Decimal) (*models.BudgetCategory, error)
	Overview(txs []models.Transaction, now time.Time) BudgetOverview
}

// RemoteServicer defines the contract for transaction CRUD against the
// remote backend. It is independent of the ledger.
type RemoteServicer interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListTransactionsPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	UpdateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}
