package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/response"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
)

// TrashHandler handles HTTP requests for the sheet trash: listing trashed
// sheets, restoring them, and deleting them permanently.
type TrashHandler struct {
	sheetService *service.SheetService
}

// NewTrashHandler creates a new TrashHandler with the provided service dependency.
func NewTrashHandler(sheetService *service.SheetService) *TrashHandler {
	return &TrashHandler{
		sheetService: sheetService,
	}
}

// TrashedSheets handles GET requests to retrieve all sheets in the trash.
//
// Endpoint: GET /api/trash
// Response: 200 OK with array of Sheet
func (h *TrashHandler) TrashedSheets(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.sheetService.GetTrashedSheets())
}

// RestoreSheet handles POST requests to move a trashed sheet back into the
// active sheets. Restoring re-sorts the active sheets by name. IDs not found
// in the trash are silently ignored.
//
// Endpoint: POST /api/trash/{uuid}/restore
// Response: 204 No Content
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
func (h *TrashHandler) RestoreSheet(w http.ResponseWriter, r *http.Request) {
	h.sheetService.RestoreSheet(chi.URLParam(r, "uuid"))
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// PermanentlyDeleteSheet handles DELETE requests to remove a sheet from the
// trash for good. This is irreversible. IDs not found in the trash are
// silently ignored.
//
// Endpoint: DELETE /api/trash/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if sheet ID is invalid (validated by middleware)
func (h *TrashHandler) PermanentlyDeleteSheet(w http.ResponseWriter, r *http.Request) {
	h.sheetService.PermanentlyDeleteSheet(chi.URLParam(r, "uuid"))
	response.RespondJSON(w, http.StatusNoContent, nil)
}
