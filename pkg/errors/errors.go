// Package errors provides structured error handling for the application.
// It defines AppError type with error codes for consistent API responses.
package errors

import (
	"errors"
	"fmt"
)

// Error codes organized by category
const (
	// General errors (1000-1099)
	CodeSuccess       = 0
	CodeUnknown       = 1000
	CodeInvalidParams = 1001
	CodeNotFound      = 1002

	// Source media errors (1100-1199)
	CodeSourceNotFound    = 1100
	CodeScreenshotNameBad = 1101
	CodeProbeFailed       = 1102

	// Clip extraction errors (1200-1299)
	CodeExtractFailed    = 1200
	CodeNoClipsExtracted = 1201

	// Concatenation errors (1300-1399)
	CodeConcatFailed = 1300

	// Storage errors (1500-1599)
	CodeDBError        = 1500
	CodeCatalogError   = 1501
	CodeNeighborsError = 1502
	CodeFileWriteError = 1503

	// Compilation errors (1600-1699)
	CodeEmptySelection    = 1600
	CodeCompilationFailed = 1601
	CodeSubClipFailed     = 1602
)

// AppError represents a structured application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code int, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithDetail wraps an error with additional detail
func WrapWithDetail(code int, message string, detail string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Detail:  detail,
		Cause:   cause,
	}
}

// Is checks if the target error is an AppError with the specified code
func Is(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts error code from error, returns CodeUnknown if not AppError
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMessage extracts message from error
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Predefined common errors
var (
	ErrInvalidParams = New(CodeInvalidParams, "Invalid parameters")
	ErrNotFound      = New(CodeNotFound, "Resource not found")

	ErrSourceNotFound = New(CodeSourceNotFound, "Source video not found")
	ErrProbeFailed    = New(CodeProbeFailed, "Source probe failed")

	ErrNoClipsExtracted = New(CodeNoClipsExtracted, "No clips could be extracted")
	ErrConcatFailed     = New(CodeConcatFailed, "Clip concatenation failed")

	ErrDBError      = New(CodeDBError, "Database error")
	ErrCatalogError = New(CodeCatalogError, "Catalog store error")

	ErrEmptySelection = New(CodeEmptySelection, "no screenshots selected")
)
