package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"budgetapp/internal/analytics"
	"budgetapp/internal/models"
	"budgetapp/internal/services"
)

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func signedAmount(tx models.Transaction) string {
	if tx.Type == models.TransactionTypeIncome {
		return "+" + formatAmount(tx.Amount)
	}
	return "-" + formatAmount(tx.Amount)
}

func formatTransaction(tx models.Transaction) string {
	line := fmt.Sprintf("%s %s  %-13s %10s  %s", tx.Date, tx.Time, tx.Category, signedAmount(tx), tx.Title)
	if tx.Note != "" {
		line += " (" + tx.Note + ")"
	}
	return line
}

func writeHistory(w io.Writer, groups []analytics.DateGroup) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "No transactions")
		return err
	}
	for i, g := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, g.Label); err != nil {
			return err
		}
		for _, tx := range g.Transactions {
			if _, err := fmt.Fprintf(w, "  %s  %-13s %10s  %s\n", tx.Time, tx.Category, signedAmount(tx), tx.Title); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(w io.Writer, s analytics.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Income\t%s\t\n", formatAmount(s.Income))
	fmt.Fprintf(tw, "Expense\t%s\t\n", formatAmount(s.Expense))
	fmt.Fprintf(tw, "Balance\t%s\t\n", formatAmount(s.Balance))
	fmt.Fprintf(tw, "Transactions\t%d\t\n", s.Count)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Breakdown) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nSpending by category"); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, share := range s.Breakdown {
		fmt.Fprintf(tw, "  %s\t%s\t%d%%\n", share.Category, formatAmount(share.Total), share.Percent)
	}
	return tw.Flush()
}

func writeBudget(w io.Writer, o services.BudgetOverview) error {
	if _, err := fmt.Fprintf(w, "Budget for %s\n\n", o.Month); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range o.Categories {
		fmt.Fprintf(tw, "%s\t%s / %s\n", c.Name, formatAmount(c.Spent), formatAmount(c.Limit))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	m := o.Metrics
	_, err := fmt.Fprintf(w, "\nSpent %s of %s (%d%%), %s remaining, %d days left in the month\n",
		formatAmount(m.TotalSpent), formatAmount(m.TotalBudget), m.PercentageUsed,
		formatAmount(m.Remaining), m.DaysRemainingInMonth)
	return err
}
