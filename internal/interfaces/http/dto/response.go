package dto

// Success responses are bare JSON values; lists add paging headers.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderPage       = "X-Page"
	HeaderPageSize   = "X-Page-Size"
)

// InternalErrorMessage is the only message a 5xx response carries
const InternalErrorMessage = "An unexpected error occurred"

// ErrorResponse is the body of every 4xx and 5xx response
type ErrorResponse struct {
	Error     string             `json:"error"`
	Code      string             `json:"code"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail names one rejected request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{Error: message, Code: code, RequestID: requestID}
}

// SessionResponse describes the caller's session
type SessionResponse struct {
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
	ExpiresAt    string   `json:"expires_at"`
}

// HealthResponse is the body of /health and /ready
type HealthResponse struct {
	Status   string         `json:"status"`
	Database *DatabaseState `json:"database,omitempty"`
}

// DatabaseState reports connectivity and pool usage
type DatabaseState struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
}
