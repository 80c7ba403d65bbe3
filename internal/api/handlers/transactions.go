package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/request"
	"github.com/finsheet/Finance-Sheets-Backend/internal/api/response"
	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
	"github.com/finsheet/Finance-Sheets-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests to retrieve all transactions of a sheet,
// newest first.
//
// Endpoint: GET /api/sheet/{uuid}/transaction
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
// Error: 404 Not Found if the ID does not name an active sheet
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "uuid")

	transactions, err := h.transactionService.GetTransactions(sheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSheetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSheetNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve transactions", err.Error())
		return
	}

	if transactions == nil {
		transactions = []model.Transaction{}
	}
	response.RespondJSON(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST requests to add a transaction to a sheet.
// The server assigns the transaction ID and the current date.
//
// Endpoint: POST /api/sheet/{uuid}/transaction
// Request Body: CreateTransactionRequest (description, amount, type, category)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the ID does not name an active sheet
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	draft := model.TransactionDraft{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        model.TransactionType(req.Type),
		Category:    model.Category(req.Category),
	}

	transaction, err := h.transactionService.CreateTransaction(sheetID, draft)
	if err != nil {
		if errors.Is(err, apperrors.ErrSheetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSheetNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction from a
// sheet. Missing sheets and missing transactions are silently ignored, so the
// endpoint always reports success.
//
// Endpoint: DELETE /api/sheet/{uuid}/transaction/{txUuid}
// Response: 204 No Content
// Error: 400 Bad Request if an ID is invalid (validated by middleware)
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	h.transactionService.DeleteTransaction(chi.URLParam(r, "uuid"), chi.URLParam(r, "txUuid"))
	response.RespondJSON(w, http.StatusNoContent, nil)
}
