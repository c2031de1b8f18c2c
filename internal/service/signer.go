package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Ed25519Signer implements ports.Signer with a per-process ed25519 key
// pair. Public keys and signatures travel as lowercase hex so every node
// decodes them identically.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewEd25519Signer generates a fresh key pair for this node.
func NewEd25519Signer() (*Ed25519Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating ed25519 key: %w", err)
	}
	return &Ed25519Signer{priv: priv, pub: pub}, nil
}

// Sign produces a hex-encoded ed25519 signature over the payload.
func (s *Ed25519Signer) Sign(payload []byte) string {
	return hex.EncodeToString(ed25519.Sign(s.priv, payload))
}

// Verify checks a hex-encoded signature against a hex-encoded public key.
// Any decode failure is simply false; verification never errors.
func (s *Ed25519Signer) Verify(publicKeyHex string, payload []byte, signatureHex string) bool {
	pub, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return false
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), payload, sig)
}

// PublicKey returns the node's hex-encoded public key.
func (s *Ed25519Signer) PublicKey() string {
	return hex.EncodeToString(s.pub)
}
