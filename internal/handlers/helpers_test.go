package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
	"budgetapp/internal/services"
	"budgetapp/internal/validator"
)

// --- mock services ---

type mockLedgerService struct {
	initializeFn        func(ctx context.Context) error
	addTransactionFn    func(ctx context.Context, tx models.Transaction) error
	clearTransactionsFn func(ctx context.Context) error
	state               services.LedgerState
}

func (m *mockLedgerService) Initialize(ctx context.Context) error {
	if m.initializeFn != nil {
		return m.initializeFn(ctx)
	}
	return nil
}

func (m *mockLedgerService) AddTransaction(ctx context.Context, tx models.Transaction) error {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ctx, tx)
	}
	m.state.Transactions = append(m.state.Transactions, tx)
	return nil
}

func (m *mockLedgerService) ClearTransactions(ctx context.Context) error {
	if m.clearTransactionsFn != nil {
		return m.clearTransactionsFn(ctx)
	}
	m.state.Transactions = nil
	return nil
}

func (m *mockLedgerService) CurrentState() services.LedgerState {
	return m.state
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

type mockBudgetService struct {
	categoriesFn func(txs []models.Transaction) []models.BudgetCategory
	setLimitFn   func(id string, limit decimal.Decimal) (*models.BudgetCategory, error)
	overviewFn   func(txs []models.Transaction, now time.Time) services.BudgetOverview
}

func (m *mockBudgetService) Categories(txs []models.Transaction) []models.BudgetCategory {
	if m.categoriesFn != nil {
		return m.categoriesFn(txs)
	}
	return []models.BudgetCategory{}
}

func (m *mockBudgetService) SetLimit(id string, limit decimal.Decimal) (*models.BudgetCategory, error) {
	if m.setLimitFn != nil {
		return m.setLimitFn(id, limit)
	}
	return &models.BudgetCategory{ID: id, Limit: limit}, nil
}

func (m *mockBudgetService) Overview(txs []models.Transaction, now time.Time) services.BudgetOverview {
	if m.overviewFn != nil {
		return m.overviewFn(txs, now)
	}
	return services.BudgetOverview{}
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockRemoteService struct {
	createTransactionFn    func(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	listTransactionsFn     func(ctx context.Context) ([]models.Transaction, error)
	listTransactionsPageFn func(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	updateTransactionFn    func(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	deleteTransactionFn    func(ctx context.Context, id string) error
}

func (m *mockRemoteService) CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(ctx, tx)
	}
	return &tx, nil
}

func (m *mockRemoteService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(ctx)
	}
	return []models.Transaction{}, nil
}

func (m *mockRemoteService) ListTransactionsPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsPageFn != nil {
		return m.listTransactionsPageFn(ctx, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockRemoteService) UpdateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(ctx, tx)
	}
	return &tx, nil
}

func (m *mockRemoteService) DeleteTransaction(ctx context.Context, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, id)
	}
	return nil
}

var _ services.RemoteServicer = (*mockRemoteService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// fixedNow is the clock used by handler tests.
var fixedNow = time.Date(2024, time.May, 3, 14, 7, 0, 0, time.UTC)

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertErrorField(t *testing.T, result map[string]interface{}, field string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["field"] != field {
		t.Errorf("expected error field %q, got %v", field, errObj["field"])
	}
}
