package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetapp/internal/models"
	"budgetapp/internal/testutil"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		testutil.Expense(models.CategoryFood, 100, "2024-05-01"),
		testutil.Income(50, "2024-05-01"),
		testutil.Expense(models.CategoryTransport, 30, "2024-05-02"),
		testutil.Expense(models.CategoryFood, 20, "2024-05-03"),
		testutil.Income(1000, "2024-05-03"),
		testutil.Expense(models.CategoryHousing, 400, "2024-05-04"),
	}
}

func TestTotalByType(t *testing.T) {
	t.Run("example", func(t *testing.T) {
		txs := []models.Transaction{
			testutil.Expense(models.CategoryFood, 100, "2024-05-01"),
			testutil.Income(50, "2024-05-01"),
		}
		assert.True(t, TotalByType(txs, models.TransactionTypeExpense).Equal(dec("100")))
		assert.True(t, TotalByType(txs, models.TransactionTypeIncome).Equal(dec("50")))
	})

	t.Run("no_match_is_zero", func(t *testing.T) {
		assert.True(t, TotalByType(nil, models.TransactionTypeIncome).IsZero())
	})

	t.Run("income_plus_expense_is_grand_total", func(t *testing.T) {
		txs := sampleLedger()
		grand := decimal.Zero
		for _, tx := range txs {
			grand = grand.Add(tx.Amount)
		}
		sum := TotalByType(txs, models.TransactionTypeIncome).Add(TotalByType(txs, models.TransactionTypeExpense))
		assert.True(t, sum.Equal(grand), "expected %s, got %s", grand, sum)
	})

	t.Run("fractional_amounts_are_exact", func(t *testing.T) {
		a := testutil.Expense(models.CategoryFood, 0, "2024-05-01")
		a.Amount = dec("0.1")
		b := testutil.Expense(models.CategoryFood, 0, "2024-05-01")
		b.Amount = dec("0.2")
		assert.True(t, TotalByType([]models.Transaction{a, b}, models.TransactionTypeExpense).Equal(dec("0.3")))
	})
}

func TestTotalByCategory(t *testing.T) {
	txs := sampleLedger()

	assert.True(t, TotalByCategory(txs, models.CategoryFood).Equal(dec("120")))
	assert.True(t, TotalByCategory(txs, models.CategoryShopping).IsZero())

	t.Run("expense_categories_sum_to_non_income_total", func(t *testing.T) {
		sum := decimal.Zero
		for _, c := range models.ExpenseCategories {
			sum = sum.Add(TotalByCategory(txs, c))
		}
		assert.True(t, sum.Equal(TotalByType(txs, models.TransactionTypeExpense)))
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		before := append([]models.Transaction(nil), txs...)
		_ = TotalByCategory(txs, models.CategoryFood)
		_ = Summarize(txs)
		assert.Equal(t, before, txs)
	})
}

func TestCategoryTotals(t *testing.T) {
	totals := CategoryTotals(sampleLedger(), models.Categories)
	require.Len(t, totals, len(models.Categories))

	for i, c := range models.Categories {
		assert.Equal(t, c, totals[i].Category)
	}
	assert.True(t, totals[0].Total.Equal(dec("120")), "food")
	assert.True(t, totals[3].Total.IsZero(), "shopping")
	assert.True(t, totals[8].Total.Equal(dec("1050")), "income")
}

func TestSpendingBreakdown(t *testing.T) {
	shares := SpendingBreakdown(sampleLedger())

	require.Len(t, shares, 3)
	assert.Equal(t, models.CategoryFood, shares[0].Category)
	assert.Equal(t, models.CategoryTransport, shares[1].Category)
	assert.Equal(t, models.CategoryHousing, shares[2].Category)
	// 120/550, 30/550, 400/550
	assert.Equal(t, int64(22), shares[0].Percent)
	assert.Equal(t, int64(5), shares[1].Percent)
	assert.Equal(t, int64(73), shares[2].Percent)

	assert.Empty(t, SpendingBreakdown(nil))
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleLedger())

	assert.True(t, s.Income.Equal(dec("1050")))
	assert.True(t, s.Expense.Equal(dec("550")))
	assert.True(t, s.Balance.Equal(dec("500")))
	assert.Equal(t, 6, s.Count)
	assert.True(t, Balance(sampleLedger()).Equal(s.Balance))
}

func budget(limit, spent string) models.BudgetCategory {
	return models.BudgetCategory{Limit: dec(limit), Spent: dec(spent)}
}

func TestBudgetMetrics(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	t.Run("totals", func(t *testing.T) {
		m := BudgetMetrics([]models.BudgetCategory{budget("800", "120"), budget("500", "30")}, now)
		assert.True(t, m.TotalBudget.Equal(dec("1300")))
		assert.True(t, m.TotalSpent.Equal(dec("150")))
		assert.True(t, m.Remaining.Equal(dec("1150")))
		assert.Equal(t, int64(12), m.PercentageUsed) // 11.54 rounds to 12
		assert.Equal(t, 21, m.DaysRemainingInMonth)
	})

	t.Run("overspent_remaining_is_negative", func(t *testing.T) {
		m := BudgetMetrics([]models.BudgetCategory{budget("100", "150")}, now)
		assert.True(t, m.Remaining.Equal(dec("-50")))
		assert.Equal(t, int64(150), m.PercentageUsed)
	})

	t.Run("zero_budget_zero_spent_is_zero_percent", func(t *testing.T) {
		m := BudgetMetrics([]models.BudgetCategory{budget("0", "0")}, now)
		assert.Equal(t, int64(0), m.PercentageUsed)
	})

	t.Run("zero_budget_with_spending_is_zero_percent", func(t *testing.T) {
		m := BudgetMetrics([]models.BudgetCategory{budget("0", "25")}, now)
		assert.Equal(t, int64(0), m.PercentageUsed)
		assert.True(t, m.Remaining.Equal(dec("-25")))
	})

	t.Run("no_categories", func(t *testing.T) {
		m := BudgetMetrics(nil, now)
		assert.True(t, m.TotalBudget.IsZero())
		assert.Equal(t, int64(0), m.PercentageUsed)
	})

	t.Run("half_rounds_up", func(t *testing.T) {
		m := BudgetMetrics([]models.BudgetCategory{budget("200", "1")}, now)
		assert.Equal(t, int64(1), m.PercentageUsed) // 0.5
	})
}

func TestDaysRemainingInMonth(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"first_of_31_day_month", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 30},
		{"last_day", time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC), 0},
		{"leap_february", time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC), 19},
		{"common_february", time.Date(2023, 2, 10, 8, 0, 0, 0, time.UTC), 18},
		{"december", time.Date(2024, 12, 25, 8, 0, 0, 0, time.UTC), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysRemainingInMonth(tc.now))
		})
	}
}
