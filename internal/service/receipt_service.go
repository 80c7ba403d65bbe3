package service

import (
	"context"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/gemini"
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// Setting key for the encrypted scanner API key.
const scannerAPIKeySetting = "scanner_api_key"

// SettingStore is the subset of the setting repository the receipt service
// needs. It is nil when the server runs without a database.
type SettingStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// ReceiptService coordinates the receipt scan flow: it resolves the scanner
// API key, calls the Gemini adapter to extract a draft from a receipt image,
// and confirms drafts into ordinary expense transactions.
//
// The API key is resolved in two steps: a key stored in the settings table
// (fernet-encrypted at rest) wins; otherwise the key from the environment is
// used. With neither present the scanner is unconfigured.
type ReceiptService struct {
	client    gemini.Client
	store     *ledger.Store
	settings  SettingStore
	fernetKey *fernet.Key
	envAPIKey string
}

// NewReceiptService creates a new ReceiptService.
//
// Parameters:
//   - client: Gemini adapter (mockable in tests)
//   - store: ledger store receiving confirmed transactions
//   - settings: setting storage, or nil when running without a database
//   - fernetKey: key for encrypting the stored API key, or nil
//   - envAPIKey: fallback API key from the environment, may be empty
func NewReceiptService(client gemini.Client, store *ledger.Store, settings SettingStore, fernetKey *fernet.Key, envAPIKey string) *ReceiptService {
	return &ReceiptService{
		client:    client,
		store:     store,
		settings:  settings,
		fernetKey: fernetKey,
		envAPIKey: envAPIKey,
	}
}

// Configured reports whether an API key is available for the scanner.
func (s *ReceiptService) Configured() (bool, error) {
	key, err := s.apiKey()
	if err != nil {
		return false, err
	}
	return key != "", nil
}

// SetAPIKey encrypts the given API key and stores it in the settings table,
// replacing any previous key. Returns ErrSettingsUnavailable when the server
// runs without a database or without an encryption key.
func (s *ReceiptService) SetAPIKey(apiKey string) error {
	if s.settings == nil || s.fernetKey == nil {
		return apperrors.ErrSettingsUnavailable
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt API key: %w", err)
	}
	return s.settings.Set(scannerAPIKeySetting, string(token))
}

// ParseReceipt sends a receipt image through the Gemini adapter and returns
// the extracted draft for the caller to confirm. The ledger is never touched.
//
// Returns ErrScannerNotConfigured when no API key is available, and
// ErrReceiptParseFailed when the adapter call fails; parse failures are
// retryable.
func (s *ReceiptService) ParseReceipt(ctx context.Context, imageBase64, mimeType string) (gemini.ParsedReceipt, error) {
	key, err := s.apiKey()
	if err != nil {
		return gemini.ParsedReceipt{}, err
	}
	if key == "" {
		return gemini.ParsedReceipt{}, apperrors.ErrScannerNotConfigured
	}

	receipt, err := s.client.ParseReceipt(ctx, key, imageBase64, mimeType)
	if err != nil {
		return gemini.ParsedReceipt{}, fmt.Errorf("%w: %v", apperrors.ErrReceiptParseFailed, err)
	}
	return receipt, nil
}

// ConfirmReceipt turns a parsed draft into an expense transaction on the named
// sheet through the ordinary add path. The suggested category is normalized
// against the expense categories, falling back to Other, and the transaction
// is dated with the current date like any manual entry.
func (s *ReceiptService) ConfirmReceipt(sheetID, description string, amount float64, category string) (model.Transaction, error) {
	draft := model.TransactionDraft{
		Description: description,
		Amount:      amount,
		Type:        model.TypeExpense,
		Category:    model.NormalizeExpenseCategory(model.Category(category)),
	}
	return s.store.AddTransaction(sheetID, draft)
}

// apiKey resolves the scanner API key: stored key first, environment second.
func (s *ReceiptService) apiKey() (string, error) {
	if s.settings != nil && s.fernetKey != nil {
		token, found, err := s.settings.Get(scannerAPIKeySetting)
		if err != nil {
			return "", err
		}
		if found {
			plain := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{s.fernetKey})
			if plain == nil {
				return "", fmt.Errorf("failed to decrypt stored API key")
			}
			return string(plain), nil
		}
	}
	return s.envAPIKey, nil
}
