package payment

// Machine-readable error codes surfaced in API responses.
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeUnsupportedNetwork = "UNSUPPORTED_NETWORK"
	ErrCodeRecipientMismatch  = "RECIPIENT_MISMATCH"
	ErrCodeVerificationFailed = "VERIFICATION_FAILED"
	ErrCodeSettlementFailed   = "SETTLEMENT_FAILED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL"
)

// Error is a domain error with a machine-readable code and a human-readable
// message. Handlers map codes onto HTTP statuses; no domain failure is ever
// fatal to the process.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a domain error
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}
