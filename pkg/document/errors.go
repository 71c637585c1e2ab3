/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package document

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

// Edit range outside the current record sequence.
var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrNothingToUndoError = errors.New("nothing to undo")

var ErrNothingToRedoError = errors.New("nothing to redo")
