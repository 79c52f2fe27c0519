package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeLineNotFound    = "LINE_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
	ErrCodeInvalidPIN      = "INVALID_PIN"
	ErrCodeInvalidImport   = "INVALID_IMPORT"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DomainError is a business logic error with a stable code.
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

// Common domain errors
var (
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrLineNotFound         = NewDomainError(ErrCodeLineNotFound, "Cart line not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrMissingCustomerField = NewDomainError(ErrCodeMissingField, "Customer name and email are required")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Status must be pending, paid or delivered")
	ErrInvalidPIN           = NewDomainError(ErrCodeInvalidPIN, "PIN must be 4-8 digits")
	ErrInvalidImport        = NewDomainError(ErrCodeInvalidImport, "Import document is not a valid product list")
)
