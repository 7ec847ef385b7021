package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors raised by Handler itself. Errors already
// categorised by go-errors keep their own code.
const (
	CodeInvalidCommand   = "HELPDOC_COMMAND_INVALID"
	CodeCommandCancelled = "HELPDOC_COMMAND_CANCELLED"
	CodeCommandTimeout   = "HELPDOC_COMMAND_TIMEOUT"
	CodeCommandFailed    = "HELPDOC_COMMAND_FAILED"
)

func tag(err error, category goerrors.Category, msg, code string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func invalidCommand(err error) error {
	return tag(err, goerrors.CategoryValidation, "command validation failed", CodeInvalidCommand)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func contextFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return tag(err, goerrors.CategoryCommand, "command deadline exceeded", CodeCommandTimeout)
	}
	return tag(err, goerrors.CategoryCommand, "command cancelled", CodeCommandCancelled)
}

func executionFailure(err error) error {
	return tag(err, goerrors.CategoryCommand, "command execution failed", CodeCommandFailed)
}
