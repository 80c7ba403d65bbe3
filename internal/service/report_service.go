package service

import (
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
	"github.com/finsheet/Finance-Sheets-Backend/internal/report"
)

// Default report parameters, used when a request does not specify them.
const (
	// DefaultSpendingWindowDays is the spending-over-time window when the
	// caller does not specify one.
	DefaultSpendingWindowDays = 30

	// DefaultTopExpensesLimit is the top-expenses result size when the caller
	// does not specify one.
	DefaultTopExpensesLimit = 5
)

// ReportService computes aggregates over a sheet's transactions. All
// computations run against a point-in-time copy of the sheet, so concurrent
// writes never skew a report mid-calculation.
type ReportService struct {
	store *ledger.Store

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewReportService creates a new ReportService backed by the provided ledger store.
func NewReportService(store *ledger.Store) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// SetClock overrides the service's time source. Intended for tests that need
// deterministic reporting windows.
func (s *ReportService) SetClock(now func() time.Time) {
	s.now = now
}

// GetTotals computes total income, total expenses, and balance for a sheet.
// Returns ErrSheetNotFound when the sheet ID does not name an active sheet.
func (s *ReportService) GetTotals(sheetID string) (model.Totals, error) {
	sheet, err := s.store.Sheet(sheetID)
	if err != nil {
		return model.Totals{}, err
	}
	return report.Totals(sheet.Transactions), nil
}

// GetCategoryBreakdown computes the per-category expense totals for a sheet.
// Returns ErrSheetNotFound when the sheet ID does not name an active sheet.
func (s *ReportService) GetCategoryBreakdown(sheetID string) ([]model.CategoryAmount, error) {
	sheet, err := s.store.Sheet(sheetID)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(sheet.Transactions), nil
}

// GetSpendingOverTime computes the daily expense series for the trailing
// window ending today. Days without expenses are omitted from the series.
// Returns ErrSheetNotFound when the sheet ID does not name an active sheet.
func (s *ReportService) GetSpendingOverTime(sheetID string, windowDays int) ([]model.DailySpending, error) {
	sheet, err := s.store.Sheet(sheetID)
	if err != nil {
		return nil, err
	}
	return report.SpendingOverTime(sheet.Transactions, windowDays, s.now()), nil
}

// GetMonthlyComparison computes income versus expense for the current
// calendar month.
// Returns ErrSheetNotFound when the sheet ID does not name an active sheet.
func (s *ReportService) GetMonthlyComparison(sheetID string) (model.MonthlyComparison, error) {
	sheet, err := s.store.Sheet(sheetID)
	if err != nil {
		return model.MonthlyComparison{}, err
	}
	return report.MonthlyIncomeVsExpense(sheet.Transactions, s.now()), nil
}

// GetTopExpenses returns the limit largest expense transactions of a sheet in
// descending amount order.
// Returns ErrSheetNotFound when the sheet ID does not name an active sheet.
func (s *ReportService) GetTopExpenses(sheetID string, limit int) ([]model.Transaction, error) {
	sheet, err := s.store.Sheet(sheetID)
	if err != nil {
		return nil, err
	}
	return report.TopExpenses(sheet.Transactions, limit), nil
}
