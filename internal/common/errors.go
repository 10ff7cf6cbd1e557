package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Extraction failure taxonomy. LowConfidence is a normal, inspectable
// outcome, not an exception; it is carried on the result, never raised.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDecode            = errors.New("decode failed")
	ErrLowConfidence     = errors.New("low confidence")
	ErrSchemaUnavailable = errors.New("field schema unavailable")
	ErrInternal          = errors.New("internal error")
	ErrNotFound          = errors.New("resource not found")
	ErrDatabase          = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// FailureKind returns the stable taxonomy code for an extraction error.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrDecode):
		return "DecodeError"
	case errors.Is(err, ErrLowConfidence):
		return "LowConfidence"
	case errors.Is(err, ErrSchemaUnavailable):
		return "SchemaUnavailable"
	default:
		return "InternalError"
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
