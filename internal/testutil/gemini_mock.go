package testutil

import (
	"context"

	"github.com/finsheet/Finance-Sheets-Backend/internal/gemini"
)

// MockGeminiClient is a mock implementation of gemini.Client for testing.
// It returns predefined test data instead of making actual API calls.
type MockGeminiClient struct {
	// MockReceipt is the receipt to return from ParseReceipt
	MockReceipt gemini.ParsedReceipt
	// MockError is the error to return from ParseReceipt
	MockError error
	// CallCount tracks how many times ParseReceipt was called
	CallCount int
	// LastAPIKey records the API key of the most recent call
	LastAPIKey string
}

// NewMockGeminiClient creates a new mock Gemini client with a plausible
// default receipt.
func NewMockGeminiClient() *MockGeminiClient {
	return &MockGeminiClient{
		MockReceipt: gemini.ParsedReceipt{
			Description: "Corner Grocery",
			Amount:      42.50,
			Category:    "Food & Dining",
			Date:        "2025-06-15",
		},
	}
}

// ParseReceipt returns the configured MockReceipt and MockError.
func (m *MockGeminiClient) ParseReceipt(_ context.Context, apiKey, _, _ string) (gemini.ParsedReceipt, error) {
	m.CallCount++
	m.LastAPIKey = apiKey
	if m.MockError != nil {
		return gemini.ParsedReceipt{}, m.MockError
	}
	return m.MockReceipt, nil
}

// WithError configures the mock to return the specified error.
func (m *MockGeminiClient) WithError(err error) *MockGeminiClient {
	m.MockError = err
	return m
}

// WithReceipt configures the mock to return the specified receipt.
func (m *MockGeminiClient) WithReceipt(receipt gemini.ParsedReceipt) *MockGeminiClient {
	m.MockReceipt = receipt
	return m
}
