package domain

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
)

// Transaction is an immutable transfer request between two wallets.
// Amount carries no positivity constraint; the ledger rejects what it
// cannot apply.
type Transaction struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// CanonicalBytes returns the exact byte encoding that is signed and
// verified. Signer and verifier must agree bit-for-bit, so this is the
// JSON encoding of the struct with its fixed field order.
func (t Transaction) CanonicalBytes() []byte {
	b, _ := json.Marshal(t)
	return b
}

// Digest returns the blake2b-256 hex digest of the canonical encoding.
// It identifies the transaction across nodes for evidence accumulation.
func (t Transaction) Digest() string {
	sum := blake2b.Sum256(t.CanonicalBytes())
	return hex.EncodeToString(sum[:])
}

// SignedTransaction wraps a Transaction with the originating node's id and
// its signature over the transaction's canonical bytes.
type SignedTransaction struct {
	Transaction Transaction `json:"transaction"`
	SenderID    uint64      `json:"sender_id"`
	Signature   string      `json:"signature"` // hex-encoded ed25519 signature
}

// TransactionResult is one node's verdict on a transaction. The signed
// transaction is echoed back only when the application succeeded.
type TransactionResult struct {
	NodeID      uint64             `json:"node_id"`
	Success     bool               `json:"success"`
	Transaction *SignedTransaction `json:"transaction,omitempty"`
}

// CanonicalBytes returns the byte encoding signed to produce a signature
// share over this result.
func (r TransactionResult) CanonicalBytes() []byte {
	b, _ := json.Marshal(r)
	return b
}

// Digest returns the identity under which evidence for this result is
// accumulated: the digest of the embedded transaction when present,
// otherwise the digest of the canonical result bytes (failed results carry
// no transaction).
func (r TransactionResult) Digest() string {
	if r.Transaction != nil {
		return r.Transaction.Transaction.Digest()
	}
	sum := blake2b.Sum256(r.CanonicalBytes())
	return hex.EncodeToString(sum[:])
}

// TransactionVerification pairs a result with the reporting node's
// signature share over the result's canonical bytes.
type TransactionVerification struct {
	Result         TransactionResult `json:"result"`
	SignatureShare string            `json:"signature_share"` // hex-encoded
}
