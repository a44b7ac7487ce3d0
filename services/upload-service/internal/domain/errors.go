package domain

import (
	"errors"
	"fmt"
)

// Machine-readable error codes returned to API callers.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeFileTooLarge  = "FILE_TOO_LARGE"
	CodeInternal      = "INTERNAL_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
)

var (
	// ErrAssetExists is returned by a store when the target name is already taken.
	ErrAssetExists = errors.New("asset already exists")
	// ErrAssetNotFound is returned by an AssetReader for unknown names.
	ErrAssetNotFound = errors.New("asset not found")
)

// UploadError carries a stable code and a caller-safe message. Err is the internal cause, if any.
type UploadError struct {
	Code    string
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *UploadError) Unwrap() error { return e.Err }

func NewValidationError(message string) *UploadError {
	return &UploadError{Code: CodeValidation, Message: message}
}

func NewInvalidFormatError(message string, cause error) *UploadError {
	return &UploadError{Code: CodeInvalidFormat, Message: message, Err: cause}
}

func NewFileTooLargeError(message string) *UploadError {
	return &UploadError{Code: CodeFileTooLarge, Message: message}
}

func NewInternalError(cause error) *UploadError {
	return &UploadError{Code: CodeInternal, Message: "Internal server error", Err: cause}
}

// CodeOf returns the code of an UploadError in err's chain, or CodeInternal.
func CodeOf(err error) string {
	var ue *UploadError
	if errors.As(err, &ue) {
		return ue.Code
	}
	return CodeInternal
}
