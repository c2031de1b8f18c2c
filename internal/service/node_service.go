package service

import (
	"context"

	"github.com/ldiego08/mpc-system/internal/core/domain"
	"github.com/ldiego08/mpc-system/internal/core/ports"

	"github.com/rs/zerolog"
)

// NodeServiceImpl implements ports.NodeService. It owns no locks itself;
// the registry, ledger and evidence store each guard their own state, so
// a transaction touches them as separate steps with no cross-store
// atomicity.
type NodeServiceImpl struct {
	id          uint64
	address     string
	signer      ports.Signer
	registry    ports.PeerRegistry
	ledger      ports.WalletLedger
	evidence    ports.EvidenceStore
	broadcaster ports.Broadcaster
	threshold   int
	log         zerolog.Logger
}

// NewNodeService creates the node orchestrator.
func NewNodeService(
	id uint64,
	address string,
	signer ports.Signer,
	registry ports.PeerRegistry,
	ledger ports.WalletLedger,
	evidence ports.EvidenceStore,
	broadcaster ports.Broadcaster,
	quorumThreshold int,
	log zerolog.Logger,
) *NodeServiceImpl {
	return &NodeServiceImpl{
		id:          id,
		address:     address,
		signer:      signer,
		registry:    registry,
		ledger:      ledger,
		evidence:    evidence,
		broadcaster: broadcaster,
		threshold:   quorumThreshold,
		log:         log,
	}
}

// Identity returns this node's own peer record.
func (s *NodeServiceImpl) Identity() domain.Peer {
	return domain.Peer{
		ID:        s.id,
		PublicKey: s.signer.PublicKey(),
		Address:   s.address,
	}
}

// HandleTransaction processes one transfer request end to end: resolve
// the origin, apply to the ledger, broadcast the verification and, for
// locally originated transfers that applied, the signed transaction
// itself. The result is returned to the caller in every case.
func (s *NodeServiceImpl) HandleTransaction(ctx context.Context, signed domain.SignedTransaction) (*domain.TransactionResult, error) {
	tx := signed.Transaction

	// An envelope claiming this node's id, or carrying no signature at
	// all, is a local origination: this node signs it as sender. Anything
	// else is a relay from a peer and must verify against the public key
	// registered for the claimed sender.
	local := signed.SenderID == s.id || signed.Signature == ""
	authenticated := true
	if local {
		signed = domain.SignedTransaction{
			Transaction: tx,
			SenderID:    s.id,
			Signature:   s.signer.Sign(tx.CanonicalBytes()),
		}
	} else {
		authenticated = s.authenticate(signed)
	}

	success := false
	if authenticated {
		if err := s.ledger.Apply(tx); err != nil {
			s.log.Info().Err(err).
				Str("from", tx.From).
				Str("to", tx.To).
				Int64("amount", tx.Amount).
				Msg("transaction rejected")
		} else {
			success = true
			s.log.Info().
				Str("from", tx.From).
				Str("to", tx.To).
				Int64("amount", tx.Amount).
				Str("digest", tx.Digest()).
				Msg("transaction applied")
		}
	}

	result := domain.TransactionResult{
		NodeID:  s.id,
		Success: success,
	}
	if success {
		result.Transaction = &signed
	}

	share := s.signer.Sign(result.CanonicalBytes())
	verification := domain.TransactionVerification{
		Result:         result,
		SignatureShare: share,
	}

	s.broadcaster.Broadcast(ctx, "verification", verification)

	// Only the originating node propagates the transaction itself;
	// relays applying a broadcast copy must not start another round.
	if success && local {
		s.broadcaster.Broadcast(ctx, "transaction", signed)
	}

	s.evidence.Append(result, share)

	return &result, nil
}

// authenticate verifies a relayed envelope against the public key
// registered for the claimed sender.
func (s *NodeServiceImpl) authenticate(signed domain.SignedTransaction) bool {
	peer, ok := s.registry.Lookup(signed.SenderID)
	if !ok {
		s.log.Debug().
			Uint64("sender_id", signed.SenderID).
			Msg("transaction from unregistered sender, rejecting")
		return false
	}
	if !s.signer.Verify(peer.PublicKey, signed.Transaction.CanonicalBytes(), signed.Signature) {
		s.log.Debug().
			Uint64("sender_id", signed.SenderID).
			Msg("transaction signature does not verify, rejecting")
		return false
	}
	return true
}

// HandleVerification authenticates a peer's signature share over the
// embedded result and appends it to the evidence store. Unverifiable
// shares are silently discarded.
func (s *NodeServiceImpl) HandleVerification(ctx context.Context, verification domain.TransactionVerification) error {
	reporterID := verification.Result.NodeID

	var publicKey string
	if reporterID == s.id {
		publicKey = s.signer.PublicKey()
	} else {
		peer, ok := s.registry.Lookup(reporterID)
		if !ok {
			s.log.Debug().
				Uint64("reporter_id", reporterID).
				Msg("verification from unknown reporter, discarding")
			return nil
		}
		publicKey = peer.PublicKey
	}

	if !s.signer.Verify(publicKey, verification.Result.CanonicalBytes(), verification.SignatureShare) {
		s.log.Debug().
			Uint64("reporter_id", reporterID).
			Msg("signature share does not verify, discarding")
		return nil
	}

	s.evidence.Append(verification.Result, verification.SignatureShare)

	digest := verification.Result.Digest()
	s.log.Debug().
		Uint64("reporter_id", reporterID).
		Str("digest", digest).
		Int("shares", s.evidence.ShareCount(digest)).
		Msg("verification recorded")

	return nil
}

// HandleWalletCreation creates a wallet locally. When the request carries
// no wallet id this node originates: it assigns a fresh id and broadcasts
// it so every peer mirrors the wallet under the same name. Requests that
// carry an id are such broadcasts and are mirrored without re-propagating.
func (s *NodeServiceImpl) HandleWalletCreation(ctx context.Context, req ports.WalletCreation) (*ports.WalletCreated, error) {
	if req.WalletID != nil {
		s.ledger.CreateWithID(*req.WalletID, req.InitialBalance)
		s.log.Info().
			Str("wallet_id", *req.WalletID).
			Int64("initial_balance", req.InitialBalance).
			Msg("wallet mirrored from peer")
		return &ports.WalletCreated{WalletID: *req.WalletID, InitialBalance: req.InitialBalance}, nil
	}

	walletID := s.ledger.Create(req.InitialBalance)
	created := &ports.WalletCreated{WalletID: walletID, InitialBalance: req.InitialBalance}

	s.broadcaster.Broadcast(ctx, "wallet_creation", created)

	s.log.Info().
		Str("wallet_id", walletID).
		Int64("initial_balance", req.InitialBalance).
		Msg("wallet created")

	return created, nil
}

// HandleRegistration records the peer and returns this node's own
// identity so the requester can record it symmetrically.
func (s *NodeServiceImpl) HandleRegistration(ctx context.Context, peer domain.Peer) domain.Peer {
	s.registry.Register(peer)
	s.log.Info().
		Uint64("peer_id", peer.ID).
		Str("peer_addr", peer.Address).
		Msg("peer registered")
	return s.Identity()
}

// Bootstrap registers this node with each initial peer address. On
// success the responder's self-declared identity is recorded; an
// unreachable peer is skipped with no retry.
func (s *NodeServiceImpl) Bootstrap(ctx context.Context, addresses []string) {
	self := s.Identity()
	for _, address := range addresses {
		responder, err := s.broadcaster.RegisterWith(ctx, address, self)
		if err != nil {
			s.log.Warn().Err(err).
				Str("peer_addr", address).
				Msg("bootstrap: peer unreachable, skipping")
			continue
		}
		s.registry.Register(*responder)
		s.log.Info().
			Uint64("peer_id", responder.ID).
			Str("peer_addr", responder.Address).
			Msg("bootstrap: registered with peer")
	}
}

// Peers returns a snapshot of the registry.
func (s *NodeServiceImpl) Peers() map[uint64]domain.Peer {
	return s.registry.Snapshot()
}

// Wallets returns a snapshot of the ledger.
func (s *NodeServiceImpl) Wallets() map[string]domain.Wallet {
	return s.ledger.Snapshot()
}

// QuorumStatus evaluates accumulated evidence for one transaction
// against the configured threshold.
func (s *NodeServiceImpl) QuorumStatus(digest string) ports.QuorumStatus {
	shares := s.evidence.ShareCount(digest)
	return ports.QuorumStatus{
		Digest:    digest,
		Shares:    shares,
		Threshold: s.threshold,
		Reached:   shares >= s.threshold,
	}
}
