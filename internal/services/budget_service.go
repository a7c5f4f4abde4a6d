package services

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"budgetapp/internal/analytics"
	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
)

// MonthLabelLayout formats the budget screen's period heading.
const MonthLabelLayout = "January 2006"

// DefaultBudgetCategories is the catalog a new board starts from, one entry
// per expense category.
func DefaultBudgetCategories() []models.BudgetCategory {
	return []models.BudgetCategory{
		{ID: "1", Name: "Food", Color: "#4F46E5", Icon: "nutrition-outline", Category: models.CategoryFood, Limit: decimal.NewFromInt(800)},
		{ID: "2", Name: "Transport", Color: "#F59E0B", Icon: "car-outline", Category: models.CategoryTransport, Limit: decimal.NewFromInt(500)},
		{ID: "3", Name: "Bills", Color: "#10B981", Icon: "document-text-outline", Category: models.CategoryBills, Limit: decimal.NewFromInt(400)},
		{ID: "4", Name: "Shopping", Color: "#EC4899", Icon: "cart-outline", Category: models.CategoryShopping, Limit: decimal.NewFromInt(300)},
		{ID: "5", Name: "Entertainment", Color: "#8B5CF6", Icon: "film-outline", Category: models.CategoryEntertainment, Limit: decimal.NewFromInt(300)},
		{ID: "6", Name: "Housing", Color: "#3B82F6", Icon: "home-outline", Category: models.CategoryHousing, Limit: decimal.NewFromInt(300)},
		{ID: "7", Name: "Health", Color: "#F43F5E", Icon: "medkit-outline", Category: models.CategoryHealth, Limit: decimal.NewFromInt(300)},
		{ID: "8", Name: "Other", Color: "#6B7280", Icon: "ellipsis-horizontal-outline", Category: models.CategoryOther, Limit: decimal.NewFromInt(300)},
	}
}

// budgetService keeps the board of budget categories. Only limits are
// mutable; spending is always derived from the transactions passed in.
type budgetService struct {
	mu      sync.RWMutex
	catalog []models.BudgetCategory
	log     *zap.SugaredLogger
}

// NewBudgetService creates a new BudgetServicer seeded with catalog. A nil
// catalog uses DefaultBudgetCategories.
func NewBudgetService(catalog []models.BudgetCategory, log *zap.SugaredLogger) BudgetServicer {
	if catalog == nil {
		catalog = DefaultBudgetCategories()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	own := make([]models.BudgetCategory, len(catalog))
	copy(own, catalog)
	return &budgetService{catalog: own, log: log}
}

// Categories returns a fresh copy of the board with Spent computed from txs.
func (s *budgetService) Categories(txs []models.Transaction) []models.BudgetCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BudgetCategory, len(s.catalog))
	for i, c := range s.catalog {
		c.Spent = analytics.TotalByCategory(txs, c.Category)
		out[i] = c
	}
	return out
}

// SetLimit changes the limit of one category.
func (s *budgetService) SetLimit(id string, limit decimal.Decimal) (*models.BudgetCategory, error) {
	if limit.IsNegative() {
		return nil, apperrors.Validation("limit", "limit must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.catalog {
		if s.catalog[i].ID != id {
			continue
		}
		s.catalog[i].Limit = limit
		s.log.Infow("budget limit updated", "category_id", id, "limit", limit.String())
		updated := s.catalog[i]
		return &updated, nil
	}
	return nil, apperrors.ErrBudgetCategoryNotFound
}

// Overview composes the budget screen for the month containing now.
func (s *budgetService) Overview(txs []models.Transaction, now time.Time) BudgetOverview {
	categories := s.Categories(txs)
	return BudgetOverview{
		Month:      now.Format(MonthLabelLayout),
		Categories: categories,
		Metrics:    analytics.BudgetMetrics(categories, now),
	}
}
