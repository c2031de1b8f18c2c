package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ldiego08/mpc-system/internal/core/domain"
	"github.com/ldiego08/mpc-system/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PeerBroadcaster implements ports.Broadcaster over HTTP POST. Fan-out is
// one goroutine per peer; a failure toward one peer never cancels the
// sends to its siblings.
type PeerBroadcaster struct {
	registry   ports.PeerRegistry
	httpClient HTTPClient
	timeout    time.Duration
	log        zerolog.Logger
}

// NewPeerBroadcaster creates a broadcaster over the given registry.
func NewPeerBroadcaster(registry ports.PeerRegistry, httpClient HTTPClient, timeout time.Duration, log zerolog.Logger) *PeerBroadcaster {
	return &PeerBroadcaster{
		registry:   registry,
		httpClient: httpClient,
		timeout:    timeout,
		log:        log,
	}
}

// Broadcast sends the payload to every currently known peer. Per-peer
// outcomes are returned for observability only; callers treat delivery
// as fire-and-forget.
func (b *PeerBroadcaster) Broadcast(ctx context.Context, path string, payload interface{}) []ports.BroadcastOutcome {
	body, err := json.Marshal(payload)
	if err != nil {
		b.log.Error().Err(err).Str("path", path).Msg("broadcast: failed to marshal payload")
		return nil
	}

	peers := b.registry.Snapshot()
	outcomes := make([]ports.BroadcastOutcome, 0, len(peers))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, peer := range peers {
		wg.Add(1)
		go func(peer domain.Peer) {
			defer wg.Done()
			err := b.post(ctx, peer.Address, path, body)
			if err != nil {
				b.log.Warn().Err(err).
					Uint64("peer_id", peer.ID).
					Str("peer_addr", peer.Address).
					Str("path", path).
					Msg("broadcast: peer unreachable, skipping")
			}
			mu.Lock()
			outcomes = append(outcomes, ports.BroadcastOutcome{Peer: peer, Err: err})
			mu.Unlock()
		}(peer)
	}
	wg.Wait()

	return outcomes
}

// RegisterWith sends this node's identity to one bootstrap address and
// returns the responder's self-declared identity from the response body.
func (b *PeerBroadcaster) RegisterWith(ctx context.Context, address string, self domain.Peer) (*domain.Peer, error) {
	body, err := json.Marshal(self)
	if err != nil {
		return nil, fmt.Errorf("marshal registration: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, peerURL(address, "register"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("register with %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("register with %s: status %d", address, resp.StatusCode)
	}

	var responder domain.Peer
	if err := json.NewDecoder(resp.Body).Decode(&responder); err != nil {
		return nil, fmt.Errorf("decode registration response from %s: %w", address, err)
	}
	return &responder, nil
}

func (b *PeerBroadcaster) post(ctx context.Context, address, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, peerURL(address, path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func peerURL(address, path string) string {
	return fmt.Sprintf("http://%s/%s", address, path)
}
