package request

// ParseReceiptRequest represents the request body for parsing a receipt image.
// The image is supplied base64-encoded along with its mime type.
type ParseReceiptRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

// ConfirmReceiptRequest represents the request body for confirming a parsed
// receipt draft into a sheet. The transaction type is forced to expense; the
// category is normalized against the expense categories.
type ConfirmReceiptRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// UpdateReceiptConfigRequest represents the request body for storing the
// receipt scanner API key.
type UpdateReceiptConfigRequest struct {
	APIKey string `json:"apiKey"`
}
