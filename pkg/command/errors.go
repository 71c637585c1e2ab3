/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package command

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

// Command text whose first token names no known command.
var ErrUnrecognizedCommandError = errors.New("unrecognized command")

func ErrUnrecognizedCommand(name string) error {
	return EnrichError(ErrUnrecognizedCommandError, "«%s»", name)
}

var ErrTooManyArgsError = errors.New("too many arguments")
