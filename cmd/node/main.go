package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ldiego08/mpc-system/config"
	httpHandler "github.com/ldiego08/mpc-system/internal/adapter/http/handler"
	"github.com/ldiego08/mpc-system/internal/adapter/memstore"
	"github.com/ldiego08/mpc-system/internal/service"
	"github.com/ldiego08/mpc-system/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Uint64("node_id", cfg.Node.ID).
		Str("address", cfg.Node.Address).
		Msg("Starting ledger node")

	// Initialize in-memory stores
	registry := memstore.NewPeerRegistry()
	ledger := memstore.NewWalletStore()
	evidence := memstore.NewEvidenceStore()

	// Generate this node's signing key pair
	signer, err := service.NewEd25519Signer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate signing key")
	}
	log.Info().Str("public_key", signer.PublicKey()).Msg("Node key pair generated")

	// Initialize peer broadcast transport
	broadcaster := service.NewPeerBroadcaster(
		registry,
		&http.Client{Timeout: cfg.Broadcast.Timeout},
		cfg.Broadcast.Timeout,
		log,
	)

	// Initialize node orchestrator
	nodeSvc := service.NewNodeService(
		cfg.Node.ID,
		cfg.Node.Address,
		signer,
		registry,
		ledger,
		evidence,
		broadcaster,
		cfg.Quorum.Threshold,
		log,
	)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		NodeSvc: nodeSvc,
		Logger:  log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Announce ourselves to the configured peers once the server is up.
	// Unreachable peers are skipped; they can still register with us later.
	if len(cfg.Peers) > 0 {
		bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		nodeSvc.Bootstrap(bootstrapCtx, cfg.Peers)
		cancel()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down node...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Node exited")
}
