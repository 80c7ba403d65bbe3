package model

// Sheet is a named container of transactions, analogous to an account or
// budget. Transactions are ordered newest-first: new transactions are
// prepended, not appended. A sheet owns its transactions exclusively; a
// transaction is never moved between sheets.
type Sheet struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Transactions []Transaction `json:"transactions"`
}

// Clone returns a deep copy of the sheet. The ledger store hands out clones so
// callers can never mutate store-owned state.
func (s Sheet) Clone() Sheet {
	out := Sheet{ID: s.ID, Name: s.Name}
	if s.Transactions != nil {
		out.Transactions = make([]Transaction, len(s.Transactions))
		copy(out.Transactions, s.Transactions)
	}
	return out
}

// LedgerSnapshot is the serializable state of the ledger store: active sheets,
// trashed sheets, and the selected sheet id. Persistence, when enabled, is
// layered on top of this snapshot.
type LedgerSnapshot struct {
	ActiveSheets  []Sheet `json:"activeSheets"`
	TrashedSheets []Sheet `json:"trashedSheets"`
	SelectedID    string  `json:"selectedId"`
}
