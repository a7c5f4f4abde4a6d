package analytics

import (
	"fmt"
	"strings"

	"budgetapp/internal/models"
)

// FilterKind selects which predicate a Filter applies.
type FilterKind string

const (
	FilterAll      FilterKind = "all"
	FilterType     FilterKind = "type"
	FilterCategory FilterKind = "category"
)

// Filter is one of: all, type=income, type=expense, category=X.
type Filter struct {
	Kind     FilterKind
	Type     models.TransactionType
	Category models.CategoryType
}

// All matches every transaction.
func All() Filter { return Filter{Kind: FilterAll} }

// ByType matches transactions of one type.
func ByType(t models.TransactionType) Filter { return Filter{Kind: FilterType, Type: t} }

// ByCategory matches transactions in one category.
func ByCategory(c models.CategoryType) Filter { return Filter{Kind: FilterCategory, Category: c} }

// ParseFilter reads the history screen's filter ids: "" or "all", "income",
// "expense", or a category name. "income" selects the type, not the category.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == string(FilterAll):
		return All(), nil
	case models.TransactionType(s).Valid():
		return ByType(models.TransactionType(s)), nil
	case models.CategoryType(s).Valid():
		return ByCategory(models.CategoryType(s)), nil
	}
	return Filter{}, fmt.Errorf("unknown filter %q", s)
}

// String returns the id ParseFilter accepts for f.
func (f Filter) String() string {
	switch f.Kind {
	case FilterType:
		return string(f.Type)
	case FilterCategory:
		return string(f.Category)
	}
	return string(FilterAll)
}

// Matches reports whether tx passes the filter.
func (f Filter) Matches(tx models.Transaction) bool {
	switch f.Kind {
	case FilterType:
		return tx.Type == f.Type
	case FilterCategory:
		return tx.Category == f.Category
	}
	return true
}

// ApplyFilter returns the matching transactions in their original order.
// The all filter returns txs itself.
func ApplyFilter(txs []models.Transaction, f Filter) []models.Transaction {
	if f.Kind == FilterAll || f.Kind == "" {
		return txs
	}
	out := []models.Transaction{}
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// TodayLabel heads the group for the current day.
const TodayLabel = "Today"

// DateGroup is one heading of the history list.
type DateGroup struct {
	Label        string               `json:"label"`
	Date         models.Date          `json:"date"`
	Transactions []models.Transaction `json:"transactions"`
}

// GroupByDate buckets transactions by exact date. Buckets appear in the order
// their date is first met while scanning txs, not in calendar order, so an
// unsorted input yields unsorted headings. Within a bucket, input order is
// kept. The bucket for today is labeled "Today"; others use the long form
// ("May 1, 2024").
func GroupByDate(txs []models.Transaction, today models.Date) []DateGroup {
	groups := []DateGroup{}
	index := make(map[models.Date]int)
	for _, tx := range txs {
		i, ok := index[tx.Date]
		if !ok {
			label := tx.Date.Long()
			if tx.Date == today {
				label = TodayLabel
			}
			groups = append(groups, DateGroup{Label: label, Date: tx.Date})
			i = len(groups) - 1
			index[tx.Date] = i
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}

// Flatten concatenates grouped transactions back into one list.
func Flatten(groups []DateGroup) []models.Transaction {
	var out []models.Transaction
	for _, g := range groups {
		out = append(out, g.Transactions...)
	}
	return out
}
