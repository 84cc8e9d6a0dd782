package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Request errors
	ErrBadRequest = errors.New("bad request")
	ErrInvalidID  = errors.New("invalid id")
)

// Employee errors
var (
	ErrEmployeeNotFound = NewCustomError(ErrResourceNotFound, "employee not found")
)

// Startup errors
var (
	ErrBootstrapFailed = errors.New("schema bootstrap failed")
	ErrSeedFailed      = errors.New("seeding default data failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	Operation string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Wrap tags err with the operation name. It returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CustomError{Err: err, Operation: op}
}

// Operation returns the operation name attached to err, if any
func Operation(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Operation
	}
	return ""
}

// Details returns the first details map found along err's chain
func Details(err error) map[string]interface{} {
	for ; err != nil; err = errors.Unwrap(err) {
		if custom, ok := err.(*CustomError); ok && custom.Details != nil {
			return custom.Details
		}
	}
	return nil
}
