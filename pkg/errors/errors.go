// Package errors defines the coded errors shared by the CLI and the HTTP API.
//
// The layout core never fails. Everything around it (tree documents,
// viewports, stored records, render formats) reports failures as an [*Error]
// carrying a [Code]. The CLI turns validation codes into exit status 2; the
// API turns them into HTTP 400 and not-found codes into 404.
//
//	err := errors.New(errors.ErrCodeInvalidTree, "unknown node type %q", typ).At("items[2].slot")
//	err.Error()              // INVALID_TREE: items[2].slot: unknown node type "blob"
//	errors.GetCode(fmt.Errorf("load: %w", err)) // INVALID_TREE
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error class.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidTree     Code = "INVALID_TREE"
	ErrCodeInvalidViewport Code = "INVALID_VIEWPORT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeLayoutNotFound Code = "LAYOUT_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// IsValidation reports whether c is one of the INVALID_* codes.
func (c Code) IsValidation() bool { return strings.HasPrefix(string(c), "INVALID_") }

// IsNotFound reports whether c is one of the *NOT_FOUND codes.
func (c Code) IsNotFound() bool { return strings.HasSuffix(string(c), "NOT_FOUND") }

// Error is a coded error. Path, when set, locates the offending node in a
// tree document, such as "items[1].slot".
type Error struct {
	Code    Code
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.detail())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// detail is the message prefixed by the path.
func (e *Error) detail() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// At returns a copy of e located at path.
func (e *Error) At(path string) *Error {
	c := *e
	c.Path = path
	return &c
}

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost [*Error] in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries code. An empty code never matches.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// UserMessage returns the text shown to users: the code prefix is dropped, a
// coded cause contributes its own message, and uncoded causes stay hidden.
// Errors outside this package are returned verbatim.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	var inner *Error
	if e.Cause != nil && errors.As(e.Cause, &inner) {
		return e.detail() + ": " + UserMessage(inner)
	}
	return e.detail()
}

// PathOf returns the document path of the outermost [*Error] in err's chain.
func PathOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Path
	}
	return ""
}
