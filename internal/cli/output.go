package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/client"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The daemon reported a failed operation
	ExitCommandError = 2 // Command error (bad flags, daemon unreachable, ...)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// Print writes data as indented JSON or through render in text mode.
func (f *OutputFormatter) Print(data any, render func(w io.Writer)) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	render(f.Writer)
	return nil
}

// finish prints result and turns err into an exit error. A failed
// operation still prints its result.
func (o *RootOptions) finish(cmd *cobra.Command, result any, render func(w io.Writer), err error) error {
	var apiErr *client.APIError
	if err != nil && !errors.As(err, &apiErr) {
		return WrapExitError(ExitCommandError, "request failed", err)
	}

	if printErr := o.formatter(cmd).Print(result, render); printErr != nil {
		return WrapExitError(ExitCommandError, "write output", printErr)
	}

	if err != nil {
		return WrapExitError(ExitFailure, "operation failed", err)
	}
	return nil
}

func printContactErrors(w io.Writer, errs []models.ContactError) {
	for _, e := range errs {
		id := e.UID
		if id == "" {
			id = e.ContactID
		}
		fmt.Fprintf(w, "  ! %s [%s] %s\n", id, e.Kind, e.Message)
	}
}

func printError(w io.Writer, msg string) {
	if msg != "" {
		fmt.Fprintf(w, "  error: %s\n", msg)
	}
}
