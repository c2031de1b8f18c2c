package handler

import (
	"strconv"

	"github.com/ldiego08/mpc-system/internal/adapter/http/dto"
	"github.com/ldiego08/mpc-system/internal/core/domain"
	"github.com/ldiego08/mpc-system/internal/core/ports"
	"github.com/ldiego08/mpc-system/pkg/apperror"
	"github.com/ldiego08/mpc-system/pkg/response"

	"github.com/gin-gonic/gin"
)

// NodeHandler handles the peer wire protocol and the observability
// endpoints.
type NodeHandler struct {
	svc ports.NodeService
}

// NewNodeHandler creates a new NodeHandler.
func NewNodeHandler(svc ports.NodeService) *NodeHandler {
	return &NodeHandler{svc: svc}
}

// Register handles POST /register. The response is this node's own
// identity so the requester can record it symmetrically.
func (h *NodeHandler) Register(c *gin.Context) {
	var req dto.PeerRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	self := h.svc.HandleRegistration(c.Request.Context(), domain.Peer{
		ID:        req.NodeID,
		PublicKey: req.PublicKey,
		Address:   req.Address,
	})

	response.JSON(c, self)
}

// Peers handles GET /peers.
func (h *NodeHandler) Peers(c *gin.Context) {
	peers := h.svc.Peers()

	out := make(map[string]dto.PeerInfo, len(peers))
	for id, p := range peers {
		out[strconv.FormatUint(id, 10)] = dto.PeerInfo{
			PublicKey: p.PublicKey,
			Address:   p.Address,
		}
	}
	response.JSON(c, out)
}

// Transaction handles POST /transaction. Application failure is a normal
// outcome carried in the broadcast result, so the HTTP reply is an
// acknowledgment either way.
func (h *NodeHandler) Transaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if _, err := h.svc.HandleTransaction(c.Request.Context(), toSignedTransaction(req)); err != nil {
		response.Error(c, err)
		return
	}

	response.Ack(c, "transaction processed")
}

// Verification handles POST /verification. Unverifiable shares are
// silently discarded, so the reply is an acknowledgment either way.
func (h *NodeHandler) Verification(c *gin.Context) {
	var req dto.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	verification := domain.TransactionVerification{
		Result:         toTransactionResult(req.Result),
		SignatureShare: req.SignatureShare,
	}
	if err := h.svc.HandleVerification(c.Request.Context(), verification); err != nil {
		response.Error(c, err)
		return
	}

	response.Ack(c, "verification processed")
}

// WalletCreation handles POST /wallet_creation: client creations and
// peer mirroring broadcasts alike.
func (h *NodeHandler) WalletCreation(c *gin.Context) {
	var req dto.WalletCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if _, err := h.svc.HandleWalletCreation(c.Request.Context(), ports.WalletCreation{
		WalletID:       req.WalletID,
		InitialBalance: req.InitialBalance,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.Ack(c, "wallet created")
}

// Wallets handles GET /wallets, an operator view of the local ledger.
func (h *NodeHandler) Wallets(c *gin.Context) {
	wallets := h.svc.Wallets()

	out := make(map[string]dto.WalletResponse, len(wallets))
	for id, w := range wallets {
		out[id] = dto.WalletResponse{ID: w.ID, Balance: w.Balance}
	}
	response.JSON(c, out)
}

// Quorum handles GET /transactions/:digest/quorum.
func (h *NodeHandler) Quorum(c *gin.Context) {
	response.JSON(c, h.svc.QuorumStatus(c.Param("digest")))
}

// Health handles GET /health: liveness plus node identity and store
// sizes; the node has no external dependencies to ping.
func (h *NodeHandler) Health(c *gin.Context) {
	self := h.svc.Identity()
	response.JSON(c, dto.HealthResponse{
		Status:  "ok",
		NodeID:  self.ID,
		Address: self.Address,
		Peers:   len(h.svc.Peers()),
		Wallets: len(h.svc.Wallets()),
	})
}

func toSignedTransaction(req dto.TransactionRequest) domain.SignedTransaction {
	return domain.SignedTransaction{
		Transaction: domain.Transaction{
			From:   req.Transaction.From,
			To:     req.Transaction.To,
			Amount: req.Transaction.Amount,
		},
		SenderID:  req.SenderID,
		Signature: req.Signature,
	}
}

func toTransactionResult(body dto.ResultBody) domain.TransactionResult {
	result := domain.TransactionResult{
		NodeID:  body.NodeID,
		Success: body.Success,
	}
	if body.Transaction != nil {
		signed := toSignedTransaction(*body.Transaction)
		result.Transaction = &signed
	}
	return result
}
