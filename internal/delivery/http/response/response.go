// Package response defines the error envelope shared by every endpoint.
// Successful responses are plain JSON bodies; only failures are wrapped.
package response

// ErrorInfo carries the business error code, a human-readable message and
// the request path the failure occurred on.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Envelope is the uniform failure body:
// {"success": false, "error": {"code": ..., "message": ..., "path": ...}}
type Envelope struct {
	Success bool      `json:"success"`
	Error   ErrorInfo `json:"error"`
}

// NewError builds a failure envelope.
func NewError(code, message, path string) Envelope {
	return Envelope{
		Success: false,
		Error: ErrorInfo{
			Code:    code,
			Message: message,
			Path:    path,
		},
	}
}
