package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suspensos/internal/shared/errors"
)

// ErrorEnvelope is the wire shape of every failure response.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OKResponse is the wire shape of write acknowledgements.
type OKResponse struct {
	OK bool `json:"ok"`
}

// AckResponse sends the `{ok: true}` acknowledgement for a write.
func AckResponse(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// ErrorResponse sends an `{error, details}` envelope with the given status.
func ErrorResponse(c *gin.Context, statusCode int, message string, details ...string) {
	envelope := ErrorEnvelope{Error: message}
	if len(details) > 0 {
		envelope.Details = details[0]
	}
	c.JSON(statusCode, envelope)
}

// ErrorResponseWithError maps an error to the `{error, details}` envelope.
// AppErrors carry their own status code; anything else is reported as an
// opaque internal error so upstream internals do not leak to clients.
func ErrorResponseWithError(c *gin.Context, message string, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		details := appErr.Details
		if details == "" {
			details = appErr.Message
		}
		c.JSON(appErr.Code, ErrorEnvelope{Error: message, Details: details})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: message, Details: "unexpected error"})
}
