package memstore

import (
	"sync"

	"github.com/ldiego08/mpc-system/internal/core/domain"
	"github.com/ldiego08/mpc-system/pkg/apperror"

	"github.com/google/uuid"
)

// WalletStore is the in-memory wallet ledger. One exclusive lock per
// ledger instance serializes Apply across the whole read-check-mutate
// sequence for both wallets.
type WalletStore struct {
	mu      sync.RWMutex
	wallets map[string]domain.Wallet
}

// NewWalletStore creates an empty wallet ledger.
func NewWalletStore() *WalletStore {
	return &WalletStore{wallets: make(map[string]domain.Wallet)}
}

// Create allocates a fresh wallet id and inserts a wallet with the given
// initial balance. The balance is not validated.
func (s *WalletStore) Create(initialBalance int64) string {
	walletID := uuid.New().String()
	s.CreateWithID(walletID, initialBalance)
	return walletID
}

// CreateWithID inserts a wallet under a peer-assigned id. Broadcast
// receivers must honor the originator's id so that all nodes name the
// same wallet identically. Last write wins.
func (s *WalletStore) CreateWithID(walletID string, initialBalance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[walletID] = domain.Wallet{ID: walletID, Balance: initialBalance}
}

// Apply debits tx.From and credits tx.To. Both wallets are validated to
// exist and the sender balance checked before either is mutated, so a
// failed Apply leaves the ledger untouched.
func (s *WalletStore) Apply(tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.wallets[tx.From]
	if !ok {
		return apperror.ErrWalletNotFound(tx.From)
	}
	receiver, ok := s.wallets[tx.To]
	if !ok {
		return apperror.ErrWalletNotFound(tx.To)
	}
	if sender.Balance < tx.Amount {
		return apperror.ErrInsufficientBalance()
	}

	sender.Balance -= tx.Amount
	receiver.Balance += tx.Amount
	s.wallets[tx.From] = sender
	s.wallets[tx.To] = receiver

	return nil
}

// Get returns the wallet with the given id.
func (s *WalletStore) Get(walletID string) (domain.Wallet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wallets[walletID]
	return w, ok
}

// Snapshot returns a point-in-time copy of all wallets.
func (s *WalletStore) Snapshot() map[string]domain.Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Wallet, len(s.wallets))
	for id, w := range s.wallets {
		out[id] = w
	}
	return out
}
