package request

// CreateTransactionRequest represents the request body for adding a
// transaction to a sheet. The id and date are assigned server-side.
type CreateTransactionRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
}
