package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"budgetapp/internal/analytics"
	"budgetapp/internal/models"
)

func addCmd(s *session) *cobra.Command {
	var in models.TransactionInput
	var txType, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to the ledger",
		Long: `Add an income or expense transaction. Date and time default to now.

Examples:
  budgetctl add --type expense --amount 12.50 --title Lunch --category food
  budgetctl add --type income --amount 2500 --title Salary --date 2024-05-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Type = models.TransactionType(txType)
			in.Category = models.CategoryType(category)
			if in.Category == "" && in.Type == models.TransactionTypeIncome {
				in.Category = models.CategoryIncome
			}

			tx, err := models.NewTransaction(in, s.now())
			if err != nil {
				return err
			}
			if err := s.ledger.AddTransaction(cmd.Context(), tx); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatTransaction(tx))
			return err
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", joinIDs(models.TransactionTypes))
	cmd.Flags().StringVar(&in.Amount, "amount", "", "amount, non-negative")
	cmd.Flags().StringVar(&in.Title, "title", "", "short description")
	cmd.Flags().StringVar(&category, "category", "", "category (defaults to income for income)")
	cmd.Flags().StringVar(&in.Date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&in.Time, "time", "", "time as HH:MM (default: now)")
	cmd.Flags().StringVar(&in.Note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func listCmd(s *session) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in the order they were added",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := analytics.ParseFilter(filter)
			if err != nil {
				return err
			}
			txs := analytics.ApplyFilter(s.ledger.CurrentState().Transactions, f)
			out := cmd.OutOrStdout()
			if len(txs) == 0 {
				_, err := fmt.Fprintln(out, "No transactions")
				return err
			}
			for _, tx := range txs {
				if _, err := fmt.Fprintln(out, formatTransaction(tx)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", filterUsage())
	return cmd
}

func historyCmd(s *session) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show transactions grouped by date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := analytics.ParseFilter(filter)
			if err != nil {
				return err
			}
			txs := analytics.ApplyFilter(s.ledger.CurrentState().Transactions, f)
			groups := analytics.GroupByDate(txs, models.DateOf(s.now()))
			return writeHistory(cmd.OutOrStdout(), groups)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", filterUsage())
	return cmd
}

func summaryCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense, balance and spending by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary := analytics.Summarize(s.ledger.CurrentState().Transactions)
			return writeSummary(cmd.OutOrStdout(), summary)
		},
	}
}

func budgetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show this month's budget categories against spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview := s.budgets.Overview(s.ledger.CurrentState().Transactions, s.now())
			return writeBudget(cmd.OutOrStdout(), overview)
		},
	}
}

func clearCmd(s *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:         "clear",
		Short:       "Delete every stored transaction",
		Long:        "Delete every stored transaction. Works even when the stored ledger cannot be read.",
		Annotations: map[string]string{allowLoadFailure: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear the ledger without --yes")
			}
			if err := s.ledger.ClearTransactions(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Ledger cleared")
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func joinIDs[T ~string](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

// filterUsage lists the ids ParseFilter accepts.
func filterUsage() string {
	return "one of: all, " + joinIDs(models.TransactionTypes) + ", " + joinIDs(models.ExpenseCategories)
}
