package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/ldiego08/mpc-system/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AckResponse is the plain acknowledgment body returned by peer POST endpoints.
type AckResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// JSON sends a 200 response with a bare JSON body. Peer endpoints exchange
// unwrapped payloads so that every node decodes the same wire shapes.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Ack sends a 200 acknowledgment string.
func Ack(c *gin.Context, message string) {
	c.JSON(http.StatusOK, AckResponse{Message: message})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
