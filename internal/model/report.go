package model

import "time"

// Totals is the aggregate balance view of a transaction sequence.
// Balance is always TotalIncome - TotalExpenses.
type Totals struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

// CategoryAmount represents an expense amount aggregated by category.
type CategoryAmount struct {
	Category Category `json:"category"`
	Amount   float64  `json:"amount"`
}

// DailySpending represents the summed expense amount for a single calendar
// date within a spending-over-time report.
type DailySpending struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// MonthlyComparison holds income and expense totals for a single calendar
// month.
type MonthlyComparison struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
