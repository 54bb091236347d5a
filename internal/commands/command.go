// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/form"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the backend.
	// Commands like help and version return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// svc is nil if NeedsBackend() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// userError marks an error caused by the command line itself.
type userError struct{ msg string }

func (e *userError) Error() string { return e.msg }

func usageErrorf(format string, a ...any) error {
	return &userError{msg: fmt.Sprintf(format, a...)}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var ue *userError
	switch {
	case err == nil:
		return exitcode.Success
	case errors.As(err, &ue),
		errors.Is(err, ErrListNotFound),
		errors.Is(err, ErrAmbiguousList),
		errors.Is(err, ErrTaskRefRequired),
		errors.Is(err, ErrTaskOutOfRange),
		errors.Is(err, form.ErrNotUnique),
		errors.Is(err, form.ErrBlankName),
		errors.Is(err, views.ErrTaskComplete),
		errors.Is(err, views.ErrTaskNotFound),
		errors.Is(err, service.ErrInvalid),
		errors.Is(err, service.ErrNotFound):
		return exitcode.UserError
	case errors.Is(err, config.ErrInvalid):
		return exitcode.ConfigError
	default:
		return exitcode.BackendError
	}
}

// fail prints err and returns its exit code.
func fail(errOut io.Writer, err error) int {
	code := ExitCode(err)
	if code == exitcode.BackendError {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return code
}

// ok prints the success acknowledgement unless quiet.
func ok(cfg *config.Config, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
