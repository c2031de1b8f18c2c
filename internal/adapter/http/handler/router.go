package handler

import (
	"github.com/ldiego08/mpc-system/internal/adapter/http/middleware"
	"github.com/ldiego08/mpc-system/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	NodeSvc ports.NodeService
	Logger  zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The five peer endpoints form the wire protocol between nodes and keep
// the exact paths and bare JSON bodies every node expects; the rest are
// operator-facing views.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	h := NewNodeHandler(deps.NodeSvc)

	// Peer wire protocol
	r.POST("/register", h.Register)
	r.GET("/peers", h.Peers)
	r.POST("/transaction", h.Transaction)
	r.POST("/verification", h.Verification)
	r.POST("/wallet_creation", h.WalletCreation)

	// Observability
	r.GET("/health", h.Health)
	r.GET("/wallets", h.Wallets)
	r.GET("/transactions/:digest/quorum", h.Quorum)

	return r
}
