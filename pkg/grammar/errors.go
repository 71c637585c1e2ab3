/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package grammar

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// Malformed token text, wrong token count, unresolvable record type,
// unterminated quoting.
var ErrBadFormatError = errors.New("bad format")

func ErrBadFormat(msg string, args ...any) error {
	return EnrichError(ErrBadFormatError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

// ParseError annotates an error raised while scanning a multi-line document
// with the originating 1-based line number.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
