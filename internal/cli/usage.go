package cli

import (
	"fmt"
	"io"
)

// exitError lets commands return a specific exit code without printing an error.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit with code %d", e.code)
}

func returnUsageError(w, wErr io.Writer, gf *GlobalFlags, usage, version string, parseErr error) error {
	if gf.JSON {
		message := usage
		details := any(nil)
		if parseErr != nil {
			message = parseErr.Error()
			details = map[string]any{"usage": usage}
		}
		ReturnError(w, "usage_error", message, details, version)
		return exitError{code: ExitUsage}
	}

	if parseErr != nil {
		Errorf(wErr, "%v", parseErr)
	}
	fmt.Fprintln(wErr, usage)
	return exitError{code: ExitUsage}
}

func returnInternalError(w, wErr io.Writer, gf *GlobalFlags, code string, err error, version string) error {
	if gf.JSON {
		ReturnError(w, code, err.Error(), nil, version)
	} else {
		Errorf(wErr, "%v", err)
	}
	return exitError{code: ExitInternalError}
}
