// Package errors defines the coded errors surfaced by the extract/load
// pipeline. Every failure mode that aborts a run maps to one of the codes
// below so that operators can tell from a single log line which step failed.
package errors

import (
	"fmt"
)

// Error codes, one per pipeline failure mode.
const (
	CodeMissingConfiguration        = "MISSING_CONFIGURATION"
	CodeInvalidConfiguration        = "INVALID_CONFIGURATION"
	CodeInvalidNumericConfiguration = "INVALID_NUMERIC_CONFIGURATION"
	CodeCredentialParse             = "CREDENTIAL_PARSE"
	CodeAuthentication              = "AUTHENTICATION"
	CodeNotFound                    = "NOT_FOUND"
	CodeConnection                  = "CONNECTION"
	CodeSchemaConflict              = "SCHEMA_CONFLICT"
	CodeLoad                        = "LOAD"
	CodeInternal                    = "INTERNAL"
)

// Error is a coded application error with an optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an Error with the given code and a formatted message.
func Newf(code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to an error. The code of a wrapped Error is preserved.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return &Error{
			Code:    e.Code,
			Message: message,
			Cause:   e,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return Wrap(err, fmt.Sprintf(format, args...))
}

// Code returns the error code, or CodeInternal for uncoded errors.
func Code(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Code
	}

	return CodeInternal
}

// Is reports whether the error carries the given code.
func Is(err error, code string) bool {
	return Code(err) == code
}

func MissingConfiguration(key string) *Error {
	return Newf(CodeMissingConfiguration, "missing required environment variable %s", key)
}

func InvalidConfiguration(key, value string) *Error {
	return Newf(CodeInvalidConfiguration, "invalid value %q for %s", value, key)
}

func InvalidNumericConfiguration(key, value string) *Error {
	return Newf(CodeInvalidNumericConfiguration, "%s must be an integer, got %q", key, value)
}

func CredentialParse(cause error) *Error {
	return &Error{
		Code:    CodeCredentialParse,
		Message: "unable to parse service account credentials",
		Cause:   cause,
	}
}

func Authentication(cause error) *Error {
	return &Error{
		Code:    CodeAuthentication,
		Message: "authentication rejected",
		Cause:   cause,
	}
}

func NotFound(what string) *Error {
	return Newf(CodeNotFound, "%s not found or not accessible", what)
}

func Connection(cause error) *Error {
	return &Error{
		Code:    CodeConnection,
		Message: "unable to connect to database",
		Cause:   cause,
	}
}

func SchemaConflict(table string) *Error {
	return Newf(CodeSchemaConflict, "table %s already exists", table)
}

func Load(cause error) *Error {
	return &Error{
		Code:    CodeLoad,
		Message: "unable to write records to table",
		Cause:   cause,
	}
}
