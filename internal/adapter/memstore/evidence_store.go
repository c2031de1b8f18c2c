package memstore

import (
	"sync"

	"github.com/ldiego08/mpc-system/internal/core/domain"
)

type evidence struct {
	result domain.TransactionResult
	share  string
}

// EvidenceStore accumulates authenticated verification evidence keyed by
// transaction digest. Each reporting node holds at most one slot per
// transaction, so re-reports replace instead of double-counting.
type EvidenceStore struct {
	mu   sync.RWMutex
	byTx map[string]map[uint64]evidence
}

// NewEvidenceStore creates an empty evidence store.
func NewEvidenceStore() *EvidenceStore {
	return &EvidenceStore{byTx: make(map[string]map[uint64]evidence)}
}

// Append records a result and its signature share under the result's
// transaction digest, replacing any earlier evidence from the same node.
func (s *EvidenceStore) Append(result domain.TransactionResult, share string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	digest := result.Digest()
	slots, ok := s.byTx[digest]
	if !ok {
		slots = make(map[uint64]evidence)
		s.byTx[digest] = slots
	}
	slots[result.NodeID] = evidence{result: result, share: share}
}

// Results returns all recorded results.
func (s *EvidenceStore) Results() []domain.TransactionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.TransactionResult
	for _, slots := range s.byTx {
		for _, ev := range slots {
			out = append(out, ev.result)
		}
	}
	return out
}

// Shares returns all recorded signature shares.
func (s *EvidenceStore) Shares() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, slots := range s.byTx {
		for _, ev := range slots {
			out = append(out, ev.share)
		}
	}
	return out
}

// ShareCount returns how many distinct nodes reported success for the
// transaction with the given digest.
func (s *EvidenceStore) ShareCount(digest string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, ev := range s.byTx[digest] {
		if ev.result.Success {
			count++
		}
	}
	return count
}

// QuorumReached reports whether at least threshold distinct nodes
// reported success for the transaction with the given digest. No
// combined signature is produced; this is a count of authenticated
// shares only.
func (s *EvidenceStore) QuorumReached(digest string, threshold int) bool {
	return s.ShareCount(digest) >= threshold
}
