package dto

// PeerRegistrationRequest is the request body for POST /register.
// Node ids are caller-declared, so zero is a legal id and only the key
// and address are required.
type PeerRegistrationRequest struct {
	NodeID    uint64 `json:"node_id"`
	PublicKey string `json:"public_key" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

// PeerInfo is one registry entry in the GET /peers response.
type PeerInfo struct {
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

// TransactionBody is the transfer inside a transaction request.
type TransactionBody struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount"`
}

// TransactionRequest is the request body for POST /transaction: a
// transfer wrapped with the claimed origin node and its signature.
// Locally originated submissions may leave sender_id and signature
// empty; the node then signs the transfer itself.
type TransactionRequest struct {
	Transaction TransactionBody `json:"transaction" binding:"required"`
	SenderID    uint64          `json:"sender_id"`
	Signature   string          `json:"signature"`
}

// ResultBody is the transaction result inside a verification request.
type ResultBody struct {
	NodeID      uint64              `json:"node_id"`
	Success     bool                `json:"success"`
	Transaction *TransactionRequest `json:"transaction,omitempty"`
}

// VerificationRequest is the request body for POST /verification.
type VerificationRequest struct {
	Result         ResultBody `json:"result" binding:"required"`
	SignatureShare string     `json:"signature_share" binding:"required"`
}

// WalletCreationRequest is the request body for POST /wallet_creation.
// WalletID is present only on the broadcast a peer sends after creating
// a wallet, so every node names the wallet identically; clients creating
// a fresh wallet omit it.
type WalletCreationRequest struct {
	InitialBalance int64   `json:"initial_balance"`
	WalletID       *string `json:"wallet_id,omitempty"`
}

// WalletResponse is one ledger entry in the GET /wallets response.
type WalletResponse struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}

// HealthResponse is the GET /health response.
type HealthResponse struct {
	Status  string `json:"status"`
	NodeID  uint64 `json:"node_id"`
	Address string `json:"address"`
	Peers   int    `json:"peers"`
	Wallets int    `json:"wallets"`
}
