package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/response"
	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
)

// ReportHandler handles HTTP requests for the report endpoints. All reports
// are computed on demand against the current sheet state.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler with the provided service dependency.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary handles GET requests to retrieve income, expense, and balance totals
// for a sheet.
//
// Endpoint: GET /api/report/{uuid}/summary
// Response: 200 OK with Totals
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
// Error: 404 Not Found if the ID does not name an active sheet
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.reportService.GetTotals(chi.URLParam(r, "uuid"))
	if err != nil {
		respondReportError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, totals)
}

// Breakdown handles GET requests to retrieve per-category expense totals for a
// sheet. Categories with no expenses are omitted; the order is the order in
// which categories first appear in the sheet.
//
// Endpoint: GET /api/report/{uuid}/breakdown
// Response: 200 OK with array of CategoryAmount
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
// Error: 404 Not Found if the ID does not name an active sheet
func (h *ReportHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.reportService.GetCategoryBreakdown(chi.URLParam(r, "uuid"))
	if err != nil {
		respondReportError(w, err)
		return
	}

	if breakdown == nil {
		breakdown = []model.CategoryAmount{}
	}
	response.RespondJSON(w, http.StatusOK, breakdown)
}

// DailySpendingResponse represents one day of the spending-over-time report.
type DailySpendingResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Spending handles GET requests to retrieve the daily expense series over a
// trailing window. Days without expenses are omitted from the series.
//
// Endpoint: GET /api/report/{uuid}/spending?days=30
// Response: 200 OK with array of DailySpendingResponse, ascending by date
// Error: 400 Bad Request if sheet ID or days parameter is invalid
// Error: 404 Not Found if the ID does not name an active sheet
func (h *ReportHandler) Spending(w http.ResponseWriter, r *http.Request) {
	days := service.DefaultSpendingWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RespondError(w, http.StatusBadRequest, "days must be a non-negative integer", "")
			return
		}
		days = parsed
	}

	spending, err := h.reportService.GetSpendingOverTime(chi.URLParam(r, "uuid"), days)
	if err != nil {
		respondReportError(w, err)
		return
	}

	result := make([]DailySpendingResponse, len(spending))
	for i, day := range spending {
		result[i] = DailySpendingResponse{
			Date:   day.Date.Format("2006-01-02"),
			Amount: day.Amount,
		}
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// Monthly handles GET requests to retrieve income versus expense totals for
// the current calendar month.
//
// Endpoint: GET /api/report/{uuid}/monthly
// Response: 200 OK with MonthlyComparison
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
// Error: 404 Not Found if the ID does not name an active sheet
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.reportService.GetMonthlyComparison(chi.URLParam(r, "uuid"))
	if err != nil {
		respondReportError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, comparison)
}

// Top handles GET requests to retrieve the largest expense transactions of a
// sheet in descending amount order.
//
// Endpoint: GET /api/report/{uuid}/top?limit=5
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if sheet ID or limit parameter is invalid
// Error: 404 Not Found if the ID does not name an active sheet
func (h *ReportHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultTopExpensesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RespondError(w, http.StatusBadRequest, "limit must be a non-negative integer", "")
			return
		}
		limit = parsed
	}

	top, err := h.reportService.GetTopExpenses(chi.URLParam(r, "uuid"), limit)
	if err != nil {
		respondReportError(w, err)
		return
	}

	if top == nil {
		top = []model.Transaction{}
	}
	response.RespondJSON(w, http.StatusOK, top)
}

// respondReportError maps report service errors to HTTP status codes.
func respondReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrSheetNotFound) {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSheetNotFound.Error(), "")
		return
	}
	response.RespondError(w, http.StatusInternalServerError, "failed to compute report", err.Error())
}
