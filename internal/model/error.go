package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeFetchFailed   = "FETCH_FAILED"
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeInvalidParam  = "INVALID_PARAMETER"
	ErrCodeNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// ErrFetchFailed covers every way loading the catalogue can fail: a non-2xx
// status, a transport error or an unparseable body.
var ErrFetchFailed = NewDomainError(ErrCodeFetchFailed, "Failed to fetch products")
