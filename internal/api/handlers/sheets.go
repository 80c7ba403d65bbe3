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

// SheetHandler handles HTTP requests for sheet endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the sheetService.
type SheetHandler struct {
	sheetService *service.SheetService
}

// NewSheetHandler creates a new SheetHandler with the provided service dependency.
func NewSheetHandler(sheetService *service.SheetService) *SheetHandler {
	return &SheetHandler{
		sheetService: sheetService,
	}
}

// Sheets handles GET requests to retrieve all active sheets in order.
//
// Endpoint: GET /api/sheet
// Response: 200 OK with array of Sheet
func (h *SheetHandler) Sheets(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.sheetService.GetSheets())
}

// CreateSheet handles POST requests to create a new sheet.
// The new sheet starts empty and becomes the selected sheet.
//
// Endpoint: POST /api/sheet
// Request Body: CreateSheetRequest (name)
// Response: 201 Created with Sheet
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *SheetHandler) CreateSheet(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSheetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSheet(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sheet, err := h.sheetService.CreateSheet(req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptySheetName) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrEmptySheetName.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create sheet", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, sheet)
}

// GetSheet handles GET requests to retrieve a single active sheet by ID.
//
// Endpoint: GET /api/sheet/{uuid}
// Response: 200 OK with Sheet
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
// Error: 404 Not Found if the ID does not name an active sheet
func (h *SheetHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "uuid")

	sheet, err := h.sheetService.GetSheet(sheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSheetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSheetNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve sheet", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, sheet)
}

// DeleteSheet handles DELETE requests to move a sheet into the trash.
// Unknown IDs and the last remaining active sheet are silently ignored, so the
// endpoint always reports success.
//
// Endpoint: DELETE /api/sheet/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
func (h *SheetHandler) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	h.sheetService.DeleteSheet(chi.URLParam(r, "uuid"))
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// SelectedSheet handles GET requests to retrieve the currently selected sheet.
//
// Endpoint: GET /api/sheet/selected
// Response: 200 OK with Sheet
// Error: 404 Not Found if no active sheet is selected
func (h *SheetHandler) SelectedSheet(w http.ResponseWriter, _ *http.Request) {
	sheet, err := h.sheetService.GetSelectedSheet()
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSheetSelected) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoSheetSelected.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve selected sheet", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, sheet)
}

// SelectSheet handles PUT requests to change the selected sheet. The ID must
// be a well-formed UUID but is otherwise accepted as-is.
//
// Endpoint: PUT /api/sheet/selected
// Request Body: SelectSheetRequest (id)
// Response: 204 No Content
// Error: 400 Bad Request if the request body or ID format is invalid
func (h *SheetHandler) SelectSheet(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SelectSheetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSelectSheet(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	h.sheetService.SelectSheet(req.ID)
	response.RespondJSON(w, http.StatusNoContent, nil)
}
