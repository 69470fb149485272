package errors

// standardized error body. success is always false so clients can
// branch on the same field as successful responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`             // error code (e.g., "unauthorized", "not_found")
	Message string `json:"message"`           // user-facing message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

type ErrorInfo struct {
	category  string
	sanitized string
}
