package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified error body emitted by the HTTP error handler.
// Stack traces never reach the client.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
