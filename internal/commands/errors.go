package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by command errors, namespaced under the module root
// the same way command loggers are.
const (
	codeValidationFailed = commandModuleRoot + ".validation_failed"
	codeCanceled         = commandModuleRoot + ".canceled"
	codeTimeout          = commandModuleRoot + ".timeout"
	codeContextError     = commandModuleRoot + ".context_error"
	codeExecutionFailed  = commandModuleRoot + ".execution_failed"
)

// wrapValidationError tags a Validate failure with the validation category.
// Errors that already carry goerrors metadata pass through unchanged so a
// handler's own classification is never overwritten.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

// wrapContextError distinguishes cancellation from deadline expiry so
// callers can tell a shutdown apart from a slow command.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	msg, code := "command context error", codeContextError
	switch err {
	case context.Canceled:
		msg, code = "command execution canceled", codeCanceled
	case context.DeadlineExceeded:
		msg, code = "command execution deadline exceeded", codeTimeout
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

// wrapExecuteError classifies any other Execute failure as a command error.
func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
