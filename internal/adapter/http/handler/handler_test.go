package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ldiego08/mpc-system/internal/adapter/http/dto"
	"github.com/ldiego08/mpc-system/internal/core/domain"
	"github.com/ldiego08/mpc-system/internal/core/ports"
	"github.com/ldiego08/mpc-system/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockNodeService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockNodeService(ctrl)
	r := SetupRouter(RouterDeps{NodeSvc: svc, Logger: zerolog.Nop()})
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- /register ---

func TestRegister_Success(t *testing.T) {
	r, svc := setupRouter(t)

	self := domain.Peer{ID: 1, PublicKey: "ownkey", Address: "127.0.0.1:8080"}
	svc.EXPECT().
		HandleRegistration(gomock.Any(), domain.Peer{ID: 2, PublicKey: "peerkey", Address: "127.0.0.1:8081"}).
		Return(self)

	w := doJSON(r, http.MethodPost, "/register", dto.PeerRegistrationRequest{
		NodeID:    2,
		PublicKey: "peerkey",
		Address:   "127.0.0.1:8081",
	})

	require.Equal(t, http.StatusOK, w.Code)

	// The response body is this node's own identity, unwrapped.
	var body domain.Peer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, self, body)
}

func TestRegister_MissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/register", map[string]interface{}{"node_id": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_MalformedJSON(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- /peers ---

func TestPeers(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().Peers().Return(map[uint64]domain.Peer{
		2: {ID: 2, PublicKey: "peerkey", Address: "127.0.0.1:8081"},
	})

	w := doJSON(r, http.MethodGet, "/peers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]dto.PeerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "2")
	assert.Equal(t, "peerkey", body["2"].PublicKey)
	assert.Equal(t, "127.0.0.1:8081", body["2"].Address)
}

// --- /transaction ---

func TestTransaction_Ack(t *testing.T) {
	r, svc := setupRouter(t)

	expected := domain.SignedTransaction{
		Transaction: domain.Transaction{From: "w1", To: "w2", Amount: 40},
		SenderID:    2,
		Signature:   "cafe",
	}
	svc.EXPECT().
		HandleTransaction(gomock.Any(), expected).
		Return(&domain.TransactionResult{NodeID: 1, Success: true}, nil)

	w := doJSON(r, http.MethodPost, "/transaction", dto.TransactionRequest{
		Transaction: dto.TransactionBody{From: "w1", To: "w2", Amount: 40},
		SenderID:    2,
		Signature:   "cafe",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transaction processed")
}

func TestTransaction_RejectedStillAcks(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().
		HandleTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{NodeID: 1, Success: false}, nil)

	w := doJSON(r, http.MethodPost, "/transaction", dto.TransactionRequest{
		Transaction: dto.TransactionBody{From: "w1", To: "w2", Amount: 10_000},
	})

	assert.Equal(t, http.StatusOK, w.Code, "a rejected transfer is a normal outcome, not an HTTP error")
}

func TestTransaction_MissingWallets(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/transaction", map[string]interface{}{
		"transaction": map[string]interface{}{"amount": 40},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- /verification ---

func TestVerification_Ack(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().
		HandleVerification(gomock.Any(), domain.TransactionVerification{
			Result:         domain.TransactionResult{NodeID: 2, Success: false},
			SignatureShare: "beef",
		}).
		Return(nil)

	w := doJSON(r, http.MethodPost, "/verification", dto.VerificationRequest{
		Result:         dto.ResultBody{NodeID: 2, Success: false},
		SignatureShare: "beef",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verification processed")
}

func TestVerification_EmbeddedTransaction(t *testing.T) {
	r, svc := setupRouter(t)

	var got domain.TransactionVerification
	svc.EXPECT().
		HandleVerification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v domain.TransactionVerification) error {
			got = v
			return nil
		})

	w := doJSON(r, http.MethodPost, "/verification", dto.VerificationRequest{
		Result: dto.ResultBody{
			NodeID:  2,
			Success: true,
			Transaction: &dto.TransactionRequest{
				Transaction: dto.TransactionBody{From: "w1", To: "w2", Amount: 40},
				SenderID:    2,
				Signature:   "cafe",
			},
		},
		SignatureShare: "beef",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Result.Transaction)
	assert.Equal(t, "w1", got.Result.Transaction.Transaction.From)
	assert.Equal(t, uint64(2), got.Result.Transaction.SenderID)
}

func TestVerification_MissingShare(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/verification", map[string]interface{}{
		"result": map[string]interface{}{"node_id": 2, "success": false},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- /wallet_creation ---

func TestWalletCreation_ClientOrigination(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().
		HandleWalletCreation(gomock.Any(), ports.WalletCreation{InitialBalance: 100}).
		Return(&ports.WalletCreated{WalletID: "new-id", InitialBalance: 100}, nil)

	w := doJSON(r, http.MethodPost, "/wallet_creation", dto.WalletCreationRequest{InitialBalance: 100})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wallet created")
}

func TestWalletCreation_PeerBroadcastCarriesID(t *testing.T) {
	r, svc := setupRouter(t)

	var got ports.WalletCreation
	svc.EXPECT().
		HandleWalletCreation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.WalletCreation) (*ports.WalletCreated, error) {
			got = req
			return &ports.WalletCreated{WalletID: *req.WalletID, InitialBalance: req.InitialBalance}, nil
		})

	walletID := "wallet-from-origin"
	w := doJSON(r, http.MethodPost, "/wallet_creation", dto.WalletCreationRequest{
		InitialBalance: 100,
		WalletID:       &walletID,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.WalletID)
	assert.Equal(t, walletID, *got.WalletID)
}

// --- observability ---

func TestWallets(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().Wallets().Return(map[string]domain.Wallet{
		"w1": {ID: "w1", Balance: 60},
	})

	w := doJSON(r, http.MethodGet, "/wallets", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(60), body["w1"].Balance)
}

func TestQuorum(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().QuorumStatus("abc123").Return(ports.QuorumStatus{
		Digest:    "abc123",
		Shares:    2,
		Threshold: 2,
		Reached:   true,
	})

	w := doJSON(r, http.MethodGet, "/transactions/abc123/quorum", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body ports.QuorumStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Reached)
	assert.Equal(t, 2, body.Shares)
}

func TestHealth(t *testing.T) {
	r, svc := setupRouter(t)

	svc.EXPECT().Identity().Return(domain.Peer{ID: 1, PublicKey: "ownkey", Address: "127.0.0.1:8080"})
	svc.EXPECT().Peers().Return(map[uint64]domain.Peer{2: {ID: 2}})
	svc.EXPECT().Wallets().Return(map[string]domain.Wallet{"w1": {ID: "w1"}})

	w := doJSON(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, uint64(1), body.NodeID)
	assert.Equal(t, 1, body.Peers)
	assert.Equal(t, 1, body.Wallets)
}
