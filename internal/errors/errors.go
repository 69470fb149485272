package errors

import (
	"net/http"

	"codeberg.org/foodmap/client/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for terminal errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For repositories and internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// standard error codes
const (
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeConflict        = "conflict"
	CodeTooManyRequests = "too_many_requests"
	CodeInvalidCreds    = "invalid_credentials"
	CodeProviderMissing = "provider_unavailable"
)

func respond(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
		Details: details,
	})
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "로그인이 필요합니다."
	}

	respond(c, http.StatusUnauthorized, CodeUnauthorized, message, "")
}

// returns a 401 for a failed credential check
func InvalidCredentials(c *gin.Context) {
	respond(c, http.StatusUnauthorized, CodeInvalidCreds, "이메일 또는 비밀번호가 올바르지 않습니다.", "")
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "관리자 권한이 필요합니다."
	}

	respond(c, http.StatusForbidden, CodeForbidden, message, "")
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	respond(c, http.StatusNotFound, CodeNotFound, message, "")
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	respond(c, http.StatusBadRequest, CodeBadRequest, message, sanitizeError(err))
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest, CodeValidationError, "입력값을 확인해주세요.", sanitizeError(err))
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	respond(c, http.StatusInternalServerError, CodeServerError, message, sanitizeError(err))
}

// returns a 409 conflict error
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "resource conflict"
	}

	respond(c, http.StatusConflict, CodeConflict, message, "")
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	}

	respond(c, http.StatusTooManyRequests, CodeTooManyRequests, message, "")
}

// returns a 404 for an OAuth provider that is not configured
func ProviderUnavailable(c *gin.Context, provider string) {
	respond(c, http.StatusNotFound, CodeProviderMissing, provider+" login is not configured", "")
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	return classifyError(err).sanitized
}
