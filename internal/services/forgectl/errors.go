package forgectl

import (
	stderrs "errors"
	"fmt"
	"strconv"

	"forgeapi/internal/core/forge"
)

// exit codes
const (
	exitFailure = 1
	exitUsage   = 2
)

// exitError is an error that carries its process exit code
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func usageErrorf(format string, a ...any) error {
	return &exitError{code: exitUsage, msg: fmt.Sprintf(format, a...)}
}

// forgeError renders a dispatcher failure as its wire message and status
// the transport cause is only shown with --verbose
func (c *CLI) forgeError(err error) error {
	status, msg := forge.HTTP(err)
	if c.verbose {
		msg += ": " + err.Error()
	}
	return &exitError{code: exitFailure, msg: msg + " (" + strconv.Itoa(status) + ")"}
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *exitError
	if stderrs.As(err, &e) {
		return e.code
	}
	var uk *forge.UnknownKindError
	if stderrs.As(err, &uk) {
		return exitUsage
	}
	return exitFailure
}
