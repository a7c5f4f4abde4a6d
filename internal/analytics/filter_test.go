package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetapp/internal/models"
	"budgetapp/internal/testutil"
)

func ids(txs []models.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		want Filter
	}{
		{"", All()},
		{"all", All()},
		{"income", ByType(models.TransactionTypeIncome)},
		{"Expense", ByType(models.TransactionTypeExpense)},
		{"food", ByCategory(models.CategoryFood)},
		{"shopping", ByCategory(models.CategoryShopping)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFilter(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			if tc.in != "" {
				round, err := ParseFilter(got.String())
				require.NoError(t, err)
				assert.Equal(t, got, round)
			}
		})
	}

	_, err := ParseFilter("travel")
	assert.Error(t, err)
}

func TestApplyFilter(t *testing.T) {
	txs := []models.Transaction{
		testutil.Expense(models.CategoryFood, 1, "2024-05-01"),
		testutil.Income(2, "2024-05-01"),
		testutil.Expense(models.CategoryShopping, 3, "2024-05-02"),
		testutil.Expense(models.CategoryFood, 4, "2024-05-03"),
	}

	t.Run("all_returns_input", func(t *testing.T) {
		got := ApplyFilter(txs, All())
		assert.Equal(t, txs, got)
	})

	t.Run("by_type_keeps_order", func(t *testing.T) {
		got := ApplyFilter(txs, ByType(models.TransactionTypeExpense))
		assert.Equal(t, []string{txs[0].ID, txs[2].ID, txs[3].ID}, ids(got))
	})

	t.Run("by_category", func(t *testing.T) {
		got := ApplyFilter(txs, ByCategory(models.CategoryFood))
		assert.Equal(t, []string{txs[0].ID, txs[3].ID}, ids(got))
	})

	t.Run("no_match_is_empty_not_nil", func(t *testing.T) {
		got := ApplyFilter(txs, ByCategory(models.CategoryHealth))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		before := append([]models.Transaction(nil), txs...)
		_ = ApplyFilter(txs, ByType(models.TransactionTypeIncome))
		assert.Equal(t, before, txs)
	})
}

func TestGroupByDate(t *testing.T) {
	today := models.MustParseDate("2024-05-03")

	t.Run("example_single_bucket_in_insertion_order", func(t *testing.T) {
		txs := []models.Transaction{
			testutil.Expense(models.CategoryFood, 100, "2024-05-01"),
			testutil.Income(50, "2024-05-01"),
		}
		groups := GroupByDate(txs, today)
		require.Len(t, groups, 1)
		assert.Equal(t, "May 1, 2024", groups[0].Label)
		assert.Equal(t, ids(txs), ids(groups[0].Transactions))
	})

	t.Run("today_label", func(t *testing.T) {
		groups := GroupByDate([]models.Transaction{testutil.Income(1, "2024-05-03")}, today)
		require.Len(t, groups, 1)
		assert.Equal(t, TodayLabel, groups[0].Label)
	})

	t.Run("buckets_follow_first_encounter", func(t *testing.T) {
		txs := []models.Transaction{
			testutil.Expense(models.CategoryFood, 1, "2024-05-02"),
			testutil.Expense(models.CategoryFood, 2, "2024-04-30"),
			testutil.Expense(models.CategoryFood, 3, "2024-05-02"),
			testutil.Expense(models.CategoryFood, 4, "2024-05-03"),
		}
		groups := GroupByDate(txs, today)
		require.Len(t, groups, 3)
		assert.Equal(t, []string{"May 2, 2024", "April 30, 2024", TodayLabel},
			[]string{groups[0].Label, groups[1].Label, groups[2].Label})
		assert.Equal(t, []string{txs[0].ID, txs[2].ID}, ids(groups[0].Transactions))
	})

	t.Run("regrouping_flattened_output_is_stable", func(t *testing.T) {
		txs := []models.Transaction{
			testutil.Expense(models.CategoryFood, 1, "2024-05-02"),
			testutil.Income(2, "2024-05-01"),
			testutil.Expense(models.CategoryBills, 3, "2024-05-02"),
			testutil.Expense(models.CategoryFood, 4, "2024-05-01"),
			testutil.Expense(models.CategoryFood, 5, "2024-05-03"),
		}
		first := GroupByDate(txs, today)
		second := GroupByDate(Flatten(first), today)
		assert.Equal(t, first, second)
	})

	t.Run("empty", func(t *testing.T) {
		groups := GroupByDate(nil, today)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}
