/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

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

// Wrong runtime type for a field value.
var ErrWrongTypeError = errors.New("wrong value type")

func ErrWrongType(msg string, args ...any) error {
	return EnrichError(ErrWrongTypeError, msg, args...)
}

// Correct type, but the value violates declared bounds or an enumeration.
var ErrOutOfRangeError = errors.New("out of range")

func ErrOutOfRange(msg string, args ...any) error {
	return EnrichError(ErrOutOfRangeError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrFieldNotFound(t IRecordType, f string) error {
	return ErrNotFound("record type «%s» has no field «%s»", t.Name(), f)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}
