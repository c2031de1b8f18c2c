package memstore

import (
	"sync"

	"github.com/ldiego08/mpc-system/internal/core/domain"
)

// PeerRegistry is the in-memory peer table. Node ids are caller-declared;
// a later registration under the same id overwrites the earlier one with
// no version check.
type PeerRegistry struct {
	mu    sync.RWMutex
	peers map[uint64]domain.Peer
}

// NewPeerRegistry creates an empty registry.
func NewPeerRegistry() *PeerRegistry {
	return &PeerRegistry{peers: make(map[uint64]domain.Peer)}
}

// Register inserts or overwrites the peer's record.
func (r *PeerRegistry) Register(peer domain.Peer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[peer.ID] = peer
}

// Lookup resolves a node id to its registered record.
func (r *PeerRegistry) Lookup(nodeID uint64) (domain.Peer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.peers[nodeID]
	return p, ok
}

// Snapshot returns a consistent point-in-time copy of all known peers.
func (r *PeerRegistry) Snapshot() map[uint64]domain.Peer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[uint64]domain.Peer, len(r.peers))
	for id, p := range r.peers {
		out[id] = p
	}
	return out
}

// Count returns the number of known peers.
func (r *PeerRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}
