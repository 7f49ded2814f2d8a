// Package parsererror defines the error taxonomy shared by all statement parsers.
//
// FormatError and EmptyResultError escape a parser's public entry point so the
// caller can render a user-facing message. RowError never does; a failing row
// is logged and skipped while the batch continues.
package parsererror

import (
	"errors"
	"fmt"
)

// FormatError reports a file that is not in the expected format: wrong
// extension, wrong MIME type, or required headers missing. The whole import
// fails immediately with no partial result.
type FormatError struct {
	File   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid format: %s", e.Reason)
	}
	return fmt.Sprintf("invalid format in %s: %s", e.File, e.Reason)
}

// EmptyResultError reports a file that parsed structurally but yielded zero
// valid transactions. It is distinct from FormatError so the caller can
// suggest "check the file contents" rather than "wrong file type".
type EmptyResultError struct {
	File string
	Msg  string
}

func (e *EmptyResultError) Error() string {
	if e.File == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// RowError reports a single row or line that failed extraction or validation.
// It is always recovered inside the parser.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s=%q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsEmptyResult reports whether err is (or wraps) an EmptyResultError.
func IsEmptyResult(err error) bool {
	var ee *EmptyResultError
	return errors.As(err, &ee)
}
