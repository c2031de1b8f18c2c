package domain

// Peer is another node's registry record: how to verify it and how to
// reach it. Node ids are caller-declared, not allocated, so two peers can
// claim the same id; the last registration wins.
type Peer struct {
	ID        uint64 `json:"node_id"`
	PublicKey string `json:"public_key"` // hex-encoded ed25519 public key
	Address   string `json:"address"`    // host:port, no scheme
}
