package ports

import (
	"context"

	"github.com/ldiego08/mpc-system/internal/core/domain"
)

// Signer wraps a node's private signing capability and its public
// verification capability. Payloads must be canonical encodings; signer
// and verifier have to agree bit-for-bit.
type Signer interface {
	// Sign produces a hex-encoded signature over the payload with the
	// node's private key.
	Sign(payload []byte) string
	// Verify is a pure predicate. Any decode or verification failure is
	// simply false; it never errors.
	Verify(publicKeyHex string, payload []byte, signatureHex string) bool
	// PublicKey returns the node's hex-encoded public key.
	PublicKey() string
}

// BroadcastOutcome is the per-peer delivery result of a broadcast,
// collected for observability only.
type BroadcastOutcome struct {
	Peer domain.Peer
	Err  error // nil on successful delivery
}

// Broadcaster fans messages out to every currently known peer.
// Delivery is best-effort: a failure toward one peer never aborts
// delivery to the others and is never surfaced to the caller.
type Broadcaster interface {
	Broadcast(ctx context.Context, path string, payload interface{}) []BroadcastOutcome
	// RegisterWith sends this node's identity to one bootstrap address and
	// returns the responder's self-declared identity.
	RegisterWith(ctx context.Context, address string, self domain.Peer) (*domain.Peer, error)
}

// WalletCreation is the validated input for wallet creation. WalletID is
// set when the request is a peer broadcast that must be mirrored under
// the originator's id; nil means this node originates and assigns the id.
type WalletCreation struct {
	WalletID       *string
	InitialBalance int64
}

// WalletCreated is the outcome of a wallet creation.
type WalletCreated struct {
	WalletID       string `json:"wallet_id"`
	InitialBalance int64  `json:"initial_balance"`
}

// QuorumStatus reports accumulated verification evidence for one
// transaction against the configured threshold.
type QuorumStatus struct {
	Digest    string `json:"digest"`
	Shares    int    `json:"shares"`
	Threshold int    `json:"threshold"`
	Reached   bool   `json:"quorum_reached"`
}

// NodeService is the node orchestrator: it receives inbound requests,
// performs the corresponding state transition and fans outbound messages
// to all registered peers.
type NodeService interface {
	// HandleTransaction processes one transfer request: authenticate or
	// sign, apply to the ledger, broadcast the verification and, when
	// applied and locally originated, the signed transaction itself.
	// Application failures are normal outcomes (Success=false), not errors.
	HandleTransaction(ctx context.Context, signed domain.SignedTransaction) (*domain.TransactionResult, error)
	// HandleVerification authenticates a peer's signature share and
	// appends it to the evidence store. Unverifiable shares are silently
	// discarded; the returned error is nil in that case.
	HandleVerification(ctx context.Context, verification domain.TransactionVerification) error
	// HandleWalletCreation creates a wallet locally and, when this node
	// originates the id, broadcasts it so peers mirror the same wallet.
	HandleWalletCreation(ctx context.Context, req WalletCreation) (*WalletCreated, error)
	// HandleRegistration records the peer and returns this node's own
	// identity for symmetric recording.
	HandleRegistration(ctx context.Context, peer domain.Peer) domain.Peer
	// Bootstrap registers this node with each initial peer address,
	// recording every responder that answers. Unreachable peers are
	// silently skipped.
	Bootstrap(ctx context.Context, addresses []string)
	// Identity returns this node's own peer record.
	Identity() domain.Peer
	// Peers returns a snapshot of the registry.
	Peers() map[uint64]domain.Peer
	// Wallets returns a snapshot of the ledger.
	Wallets() map[string]domain.Wallet
	// QuorumStatus evaluates accumulated evidence for one transaction.
	QuorumStatus(digest string) QuorumStatus
}
