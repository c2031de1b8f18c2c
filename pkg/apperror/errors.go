package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Ledger (WALLET) ----

func ErrWalletNotFound(walletID string) *AppError {
	return New("WALLET_001", fmt.Sprintf("Wallet %s not found", walletID), http.StatusNotFound)
}

func ErrInsufficientBalance() *AppError {
	return New("WALLET_002", "Insufficient balance in sender wallet", http.StatusPaymentRequired)
}

func ErrWalletExists(walletID string) *AppError {
	return New("WALLET_003", fmt.Sprintf("Wallet %s already exists", walletID), http.StatusConflict)
}

// ---- Transaction Processing (TX) ----

func ErrInvalidSignature() *AppError {
	return New("TX_001", "Transaction signature does not verify", http.StatusUnauthorized)
}

func ErrUnknownSender(nodeID uint64) *AppError {
	return New("TX_002", fmt.Sprintf("Sender node %d is not a registered peer", nodeID), http.StatusUnauthorized)
}

func ErrInvalidShare() *AppError {
	return New("TX_003", "Signature share does not verify against reporter key", http.StatusUnauthorized)
}

// ---- Peer Registry (PEER) ----

func ErrUnknownPeer(nodeID uint64) *AppError {
	return New("PEER_001", fmt.Sprintf("Peer %d not found in registry", nodeID), http.StatusNotFound)
}

func ErrInvalidPublicKey() *AppError {
	return New("PEER_002", "Peer public key is not valid hex-encoded ed25519", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
