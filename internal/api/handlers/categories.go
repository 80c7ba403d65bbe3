package handlers

import (
	"net/http"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/response"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// CategoryHandler serves the category taxonomy. The taxonomy is fixed at
// compile time, so the handler has no service dependency.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoriesResponse represents the category list for one transaction type.
type CategoriesResponse struct {
	Type       string           `json:"type"`
	Categories []model.Category `json:"categories"`
}

// Categories handles GET requests to retrieve the allowed categories for a
// transaction type, in their canonical display order.
//
// Endpoint: GET /api/category?type=expense|income
// Response: 200 OK with CategoriesResponse
// Error: 400 Bad Request if the type parameter is missing or unknown
func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	rawType := r.URL.Query().Get("type")
	transactionType := model.TransactionType(rawType)
	if !model.ValidTransactionType[transactionType] {
		response.RespondError(w, http.StatusBadRequest, "type must be income or expense", "")
		return
	}

	response.RespondJSON(w, http.StatusOK, CategoriesResponse{
		Type:       rawType,
		Categories: model.CategoriesForType(transactionType),
	})
}
