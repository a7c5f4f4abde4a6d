// Package analytics derives totals, budget metrics, filtered lists and date
// groupings from ledger snapshots. Every function is pure: no I/O, and input
// slices are never modified.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetapp/internal/models"
)

var hundred = decimal.NewFromInt(100)

// TotalByType sums the amounts of transactions of the given type.
func TotalByType(txs []models.Transaction, txType models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalByCategory sums the amounts of transactions in the given category,
// regardless of type.
func TotalByCategory(txs []models.Transaction, category models.CategoryType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense.
func Balance(txs []models.Transaction) decimal.Decimal {
	return TotalByType(txs, models.TransactionTypeIncome).Sub(TotalByType(txs, models.TransactionTypeExpense))
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category models.CategoryType `json:"category"`
	Total    decimal.Decimal     `json:"total"`
}

// CategoryTotals returns one entry per requested category, in the order
// given, including categories with no transactions.
func CategoryTotals(txs []models.Transaction, categories []models.CategoryType) []CategoryTotal {
	sums := make(map[models.CategoryType]decimal.Decimal, len(categories))
	for _, tx := range txs {
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}
	out := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryTotal{Category: c, Total: sums[c]})
	}
	return out
}

// CategoryShare is a non-zero spending category and its rounded share of
// all expense spending, in percent.
type CategoryShare struct {
	Category models.CategoryType `json:"category"`
	Total    decimal.Decimal     `json:"total"`
	Percent  int64               `json:"percent"`
}

// SpendingBreakdown returns expense categories with a non-zero total, in
// display order, each with its share of total spending. Only expense-typed
// transactions count.
func SpendingBreakdown(txs []models.Transaction) []CategoryShare {
	var expenses []models.Transaction
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense {
			expenses = append(expenses, tx)
		}
	}
	spent := TotalByType(expenses, models.TransactionTypeExpense)

	out := []CategoryShare{}
	for _, ct := range CategoryTotals(expenses, models.ExpenseCategories) {
		if !ct.Total.IsPositive() {
			continue
		}
		out = append(out, CategoryShare{
			Category: ct.Category,
			Total:    ct.Total,
			Percent:  percentOf(ct.Total, spent),
		})
	}
	return out
}

// Summary bundles the home-screen figures.
type Summary struct {
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Balance    decimal.Decimal `json:"balance"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"by_category"`
	Breakdown  []CategoryShare `json:"breakdown"`
}

// Summarize computes income, expense, balance and per-category totals.
func Summarize(txs []models.Transaction) Summary {
	income := TotalByType(txs, models.TransactionTypeIncome)
	expense := TotalByType(txs, models.TransactionTypeExpense)
	return Summary{
		Income:     income,
		Expense:    expense,
		Balance:    income.Sub(expense),
		Count:      len(txs),
		ByCategory: CategoryTotals(txs, models.Categories),
		Breakdown:  SpendingBreakdown(txs),
	}
}

// Metrics summarizes a set of budget categories.
type Metrics struct {
	TotalBudget          decimal.Decimal `json:"total_budget"`
	TotalSpent           decimal.Decimal `json:"total_spent"`
	Remaining            decimal.Decimal `json:"remaining"`
	PercentageUsed       int64           `json:"percentage_used"`
	DaysRemainingInMonth int             `json:"days_remaining_in_month"`
}

// BudgetMetrics totals limits and spending across categories. Remaining may
// be negative. PercentageUsed is 0 when the total budget is 0. Days remaining
// counts from the day after now through the last day of now's month.
func BudgetMetrics(categories []models.BudgetCategory, now time.Time) Metrics {
	totalBudget := decimal.Zero
	totalSpent := decimal.Zero
	for _, c := range categories {
		totalBudget = totalBudget.Add(c.Limit)
		totalSpent = totalSpent.Add(c.Spent)
	}
	return Metrics{
		TotalBudget:          totalBudget,
		TotalSpent:           totalSpent,
		Remaining:            totalBudget.Sub(totalSpent),
		PercentageUsed:       percentOf(totalSpent, totalBudget),
		DaysRemainingInMonth: DaysRemainingInMonth(now),
	}
}

// DaysRemainingInMonth returns the number of days after now's day up to and
// including the last day of its month.
func DaysRemainingInMonth(now time.Time) int {
	// Day 0 of next month normalizes to the last day of this month.
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return last - now.Day()
}

// percentOf returns round(100*part/whole), or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) int64 {
	if whole.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(whole).Round(0).IntPart()
}
