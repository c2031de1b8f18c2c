package domain

// Wallet is a named balance ledger entry. Balances are signed so that a
// misconfigured initial balance is representable; the ledger guards the
// debit path, not the data type.
type Wallet struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}
