// Package gemini provides a client for extracting transaction drafts from
// receipt images using the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// Model is the Gemini model used for receipt extraction.
	Model = "gemini-2.5-flash"

	endpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
)

// Client defines the interface for parsing receipt images into transaction
// drafts. This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	ParseReceipt(ctx context.Context, apiKey, imageBase64, mimeType string) (ParsedReceipt, error)
}

// ReceiptClient provides receipt parsing backed by the Gemini API.
// It wraps an HTTP client and provides a single structured-extraction call.
type ReceiptClient struct {
	httpClient *http.Client
	baseURL    string
	categories []string
}

// NewReceiptClient creates a new Gemini receipt client with default HTTP
// settings. The categories are the allowed classification values offered to
// the model; unknown suggestions are normalized downstream.
//
// Returns:
//   - *ReceiptClient: A new client instance ready for use
func NewReceiptClient(categories []string) *ReceiptClient {
	return &ReceiptClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf(endpoint, Model),
		categories: categories,
	}
}

// ParseReceipt sends the receipt image to the Gemini API and decodes the
// constrained JSON output into a ParsedReceipt.
//
// The model is asked for the merchant name, the final total amount, the date
// in YYYY-MM-DD format, and one of the allowed categories (falling back to
// "Other"). A response schema restricts the output to a single JSON object.
//
// Parameters:
//   - apiKey: Gemini API key
//   - imageBase64: base64-encoded image bytes
//   - mimeType: image mime type (e.g. "image/jpeg")
//
// Returns:
//   - ParsedReceipt: The extracted draft
//   - error: If the HTTP request fails, the API returns an error, or the
//     response does not contain a decodable receipt object
func (c *ReceiptClient) ParseReceipt(ctx context.Context, apiKey, imageBase64, mimeType string) (ParsedReceipt, error) {
	if apiKey == "" {
		return ParsedReceipt{}, fmt.Errorf("missing API key")
	}

	prompt := fmt.Sprintf(
		"Analyze this receipt. Extract the merchant name for the description, "+
			"the final total amount, and the transaction date (in YYYY-MM-DD format). "+
			"Classify it into one of the following categories: %s. "+
			"If a suitable category isn't found, use 'Other'. Return a single JSON object.",
		strings.Join(c.categories, ", "))

	reqBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: imageBase64}},
				{Text: prompt},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"description": {Type: "STRING", Description: "The name of the merchant or store."},
					"amount":      {Type: "NUMBER", Description: "The final total amount of the transaction."},
					"date":        {Type: "STRING", Description: "The date in YYYY-MM-DD format. Optional."},
					"category":    {Type: "STRING", Description: "One of the provided categories.", Enum: c.categories},
				},
				Required: []string{"description", "amount", "category"},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return ParsedReceipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return ParsedReceipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ParsedReceipt{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ParsedReceipt{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return ParsedReceipt{}, fmt.Errorf("malformed API response: %w", err)
	}

	if response.Error != nil {
		return ParsedReceipt{}, fmt.Errorf("gemini error %d: %s", response.Error.Code, response.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return ParsedReceipt{}, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	return DecodeReceipt(response)
}

// DecodeReceipt extracts the receipt object from a raw generateContent
// response. The model returns the JSON object as text in the first candidate
// part.
func DecodeReceipt(response Response) (ParsedReceipt, error) {
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return ParsedReceipt{}, fmt.Errorf("no candidates returned")
	}

	text := strings.TrimSpace(response.Candidates[0].Content.Parts[0].Text)

	var receipt ParsedReceipt
	if err := json.Unmarshal([]byte(text), &receipt); err != nil {
		return ParsedReceipt{}, fmt.Errorf("malformed receipt payload: %w", err)
	}

	if strings.TrimSpace(receipt.Description) == "" {
		return ParsedReceipt{}, fmt.Errorf("receipt payload missing description")
	}
	if receipt.Amount <= 0 {
		return ParsedReceipt{}, fmt.Errorf("receipt payload has non-positive amount")
	}
	if strings.TrimSpace(receipt.Category) == "" {
		return ParsedReceipt{}, fmt.Errorf("receipt payload missing category")
	}

	return receipt, nil
}
