package errors

import (
	"net/http"

	"bazaar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please fill all the fields",
		"",
	)

	// Account errors
	ErrBuyerAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"BUYER_ALREADY_EXISTS",
		"Buyer already exists",
		"",
	)

	ErrSellerAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"SELLER_ALREADY_EXISTS",
		"Seller already exists",
		"",
	)

	ErrBuyerNotFound = NewBaseError(
		http.StatusBadRequest,
		"BUYER_NOT_FOUND",
		"Buyer does not exist",
		"",
	)

	ErrSellerNotFound = NewBaseError(
		http.StatusBadRequest,
		"SELLER_NOT_FOUND",
		"Seller does not exist",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid Email or Password",
		"",
	)

	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign In First",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid Token",
		"",
	)

	ErrIdentityNotFound = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_NOT_FOUND",
		"User not found",
		"",
	)

	ErrSellerOnly = NewBaseError(
		http.StatusForbidden,
		"SELLER_ONLY",
		"Seller account required",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Invalid ID",
		"",
	)

	ErrNoProducts = NewBaseError(
		http.StatusNotFound,
		"NO_PRODUCTS",
		"No products found",
		"",
	)

	ErrNoOwnProducts = NewBaseError(
		http.StatusNotFound,
		"NO_OWN_PRODUCTS",
		"You have no products",
		"",
	)

	ErrNotProductOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_PRODUCT_OWNER",
		"You do not own this product",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
