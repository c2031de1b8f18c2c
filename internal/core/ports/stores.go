package ports

import (
	"github.com/ldiego08/mpc-system/internal/core/domain"
)

// PeerRegistry records who else exists and how to reach/verify them.
// Registrations are last-write-wins per node id; implementations guard
// their own state with an exclusive lock.
type PeerRegistry interface {
	// Register inserts or overwrites the peer's record. Idempotent under
	// identical input.
	Register(peer domain.Peer)
	// Lookup resolves a node id to its registered record.
	Lookup(nodeID uint64) (domain.Peer, bool)
	// Snapshot returns a consistent point-in-time copy of all known peers.
	Snapshot() map[uint64]domain.Peer
	// Count returns the number of known peers.
	Count() int
}

// WalletLedger owns the wallet balances of a single node.
type WalletLedger interface {
	// Create allocates a fresh wallet id, inserts a wallet with the given
	// initial balance and returns the id. The balance is not validated.
	Create(initialBalance int64) string
	// CreateWithID inserts a wallet under a peer-assigned id, honoring the
	// id carried by a wallet-creation broadcast. Last write wins.
	CreateWithID(walletID string, initialBalance int64)
	// Apply debits tx.From and credits tx.To atomically. Both wallets are
	// validated to exist and the sender balance checked before any
	// mutation; on error nothing has changed.
	Apply(tx domain.Transaction) error
	// Get returns the wallet with the given id.
	Get(walletID string) (domain.Wallet, bool)
	// Snapshot returns a point-in-time copy of all wallets.
	Snapshot() map[string]domain.Wallet
}

// EvidenceStore accumulates authenticated transaction results and
// signature shares, keyed by transaction identity, for quorum evaluation.
type EvidenceStore interface {
	// Append records a result and its share under the result's digest.
	// A node re-reporting the same transaction replaces its previous
	// evidence, so each reporter counts once.
	Append(result domain.TransactionResult, share string)
	// Results returns all recorded results.
	Results() []domain.TransactionResult
	// Shares returns all recorded signature shares.
	Shares() []string
	// ShareCount returns how many distinct nodes reported success for the
	// transaction with the given digest.
	ShareCount(digest string) int
	// QuorumReached reports whether at least threshold distinct nodes
	// reported success for the transaction with the given digest.
	QuorumReached(digest string, threshold int) bool
}
