package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/request"
	"github.com/finsheet/Finance-Sheets-Backend/internal/api/response"
	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
	"github.com/finsheet/Finance-Sheets-Backend/internal/validation"
)

// ReceiptHandler handles HTTP requests for the receipt scan flow: parsing a
// receipt image into a draft, confirming a draft into a sheet, and managing
// the scanner configuration.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler with the provided service dependency.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// ParseReceipt handles POST requests to extract a transaction draft from a
// receipt image. The draft is returned to the caller for confirmation; no
// ledger state changes.
//
// Endpoint: POST /api/receipt/parse
// Request Body: ParseReceiptRequest (image base64, mimeType)
// Response: 200 OK with ParsedReceipt
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 502 Bad Gateway if the parser fails; the request can be retried
// Error: 503 Service Unavailable if no API key is configured
func (h *ReceiptHandler) ParseReceipt(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ParseReceiptRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateParseReceipt(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	receipt, err := h.receiptService.ParseReceipt(r.Context(), req.Image, req.MimeType)
	if err != nil {
		if errors.Is(err, apperrors.ErrScannerNotConfigured) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrScannerNotConfigured.Error(), "")
			return
		}
		if errors.Is(err, apperrors.ErrReceiptParseFailed) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrReceiptParseFailed.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to parse receipt", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, receipt)
}

// ConfirmReceipt handles POST requests to turn a parsed draft into an expense
// transaction on a sheet. The draft goes through the ordinary add path: the
// category is normalized against the expense categories and the transaction is
// dated with the current date.
//
// Endpoint: POST /api/sheet/{uuid}/receipt
// Request Body: ConfirmReceiptRequest (description, amount, category)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the ID does not name an active sheet
func (h *ReceiptHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.ConfirmReceiptRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateConfirmReceipt(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.receiptService.ConfirmReceipt(sheetID, req.Description, req.Amount, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrSheetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSheetNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to confirm receipt", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// ReceiptConfigResponse represents the scanner configuration status.
type ReceiptConfigResponse struct {
	Configured bool `json:"configured"`
}

// Config handles GET requests to check whether the receipt scanner has an API
// key available. The key itself is never returned.
//
// Endpoint: GET /api/receipt/config
// Response: 200 OK with ReceiptConfigResponse
func (h *ReceiptHandler) Config(w http.ResponseWriter, _ *http.Request) {
	configured, err := h.receiptService.Configured()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read scanner configuration", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ReceiptConfigResponse{Configured: configured})
}

// UpdateConfig handles PUT requests to store the scanner API key. The key is
// encrypted before it reaches the settings table.
//
// Endpoint: PUT /api/receipt/config
// Response: 204 No Content
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 503 Service Unavailable if the server runs without a database
func (h *ReceiptHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateReceiptConfigRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateReceiptConfig(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.receiptService.SetAPIKey(req.APIKey); err != nil {
		if errors.Is(err, apperrors.ErrSettingsUnavailable) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrSettingsUnavailable.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
