// Package report computes derived aggregates over a sheet's transaction
// sequence. Every function is pure: no side effects, no stored state. Input
// sizes are small, so results are recomputed on every query with no caching.
package report

import (
	"sort"
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// Totals sums the transaction sequence into income, expenses, and their
// balance. An empty input yields all zeros.
func Totals(transactions []model.Transaction) model.Totals {
	var t model.Totals
	for _, tx := range transactions {
		switch tx.Type {
		case model.TypeIncome:
			t.TotalIncome += tx.Amount
		case model.TypeExpense:
			t.TotalExpenses += tx.Amount
		}
	}
	t.Balance = t.TotalIncome - t.TotalExpenses
	return t
}

// CategoryBreakdown groups expense transactions by category and sums amounts
// per category. Income transactions are excluded entirely, and categories with
// no matching transactions are omitted rather than reported as zero. The
// result preserves first-encountered category order.
func CategoryBreakdown(transactions []model.Transaction) []model.CategoryAmount {
	index := make(map[model.Category]int)
	var out []model.CategoryAmount
	for _, tx := range transactions {
		if tx.Type != model.TypeExpense {
			continue
		}
		if i, ok := index[tx.Category]; ok {
			out[i].Amount += tx.Amount
			continue
		}
		index[tx.Category] = len(out)
		out = append(out, model.CategoryAmount{Category: tx.Category, Amount: tx.Amount})
	}
	return out
}

// SpendingOverTime filters to expense transactions whose date falls within
// [reference - windowDays, reference] (both bounds inclusive), groups them by
// calendar date, and returns per-date sums in ascending date order.
//
// Dates with no expenses are omitted, not zero-filled. The sparse output is a
// known gap inherited from the reference behavior; callers that want a
// continuous calendar range must densify it themselves.
func SpendingOverTime(transactions []model.Transaction, windowDays int, reference time.Time) []model.DailySpending {
	upper := model.DateOnly(reference)
	lower := upper.AddDate(0, 0, -windowDays)

	sums := make(map[time.Time]float64)
	for _, tx := range transactions {
		if tx.Type != model.TypeExpense {
			continue
		}
		day := model.DateOnly(tx.Date)
		if day.Before(lower) || day.After(upper) {
			continue
		}
		sums[day] += tx.Amount
	}

	out := make([]model.DailySpending, 0, len(sums))
	for day, amount := range sums {
		out = append(out, model.DailySpending{Date: day, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// MonthlyIncomeVsExpense sums income and expense amounts over the transactions
// whose date falls in the same calendar month and year as reference.
func MonthlyIncomeVsExpense(transactions []model.Transaction, reference time.Time) model.MonthlyComparison {
	refYear, refMonth, _ := reference.UTC().Date()

	var c model.MonthlyComparison
	for _, tx := range transactions {
		year, month, _ := tx.Date.UTC().Date()
		if year != refYear || month != refMonth {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			c.Income += tx.Amount
		case model.TypeExpense:
			c.Expense += tx.Amount
		}
	}
	return c
}

// TopExpenses filters to expense transactions, sorts them descending by
// amount, and returns the first n (or fewer when the input is smaller). The
// sort is stable, so equal amounts keep their original relative order, and the
// returned transactions are the originals, not transformed copies.
func TopExpenses(transactions []model.Transaction, n int) []model.Transaction {
	var expenses []model.Transaction
	for _, tx := range transactions {
		if tx.Type == model.TypeExpense {
			expenses = append(expenses, tx)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount > expenses[j].Amount
	})
	if n < 0 {
		n = 0
	}
	if n < len(expenses) {
		expenses = expenses[:n]
	}
	return expenses
}
