package moonquakes

import (
	"errors"
	"fmt"
)

// A Status is an outcome code for operations crossing the embedding
// boundary. The values are fixed and stable across versions; future
// compile and execute paths report exclusively through this space.
type Status int

const (
	// StatusOK reports success.
	StatusOK Status = iota
	// StatusYield reports a cooperative suspension.
	StatusYield
	// StatusErrRun reports a runtime error during execution.
	StatusErrRun
	// StatusErrSyntax reports a syntax error during compilation.
	StatusErrSyntax
	// StatusErrMem reports memory exhaustion.
	StatusErrMem
	// StatusErrErr reports an error raised while handling another error.
	StatusErrErr
	// StatusErrFile reports a file access error.
	StatusErrFile
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusYield:
		return "yield"
	case StatusErrRun:
		return "runtime error"
	case StatusErrSyntax:
		return "syntax error"
	case StatusErrMem:
		return "out of memory"
	case StatusErrErr:
		return "error in error handling"
	case StatusErrFile:
		return "file error"
	}
	return fmt.Sprintf("unknown status %d", int(s))
}

// A boundaryError is an error returned across the embedding boundary. It
// carries the outcome code the operation reports.
type boundaryError struct {
	status Status
	msg    string
}

func (e *boundaryError) Error() string {
	return e.msg
}

// runErrorf builds a StatusErrRun boundary error.
func runErrorf(format string, args ...interface{}) error {
	return &boundaryError{status: StatusErrRun, msg: fmt.Sprintf(format, args...)}
}

// memErrorf builds a StatusErrMem boundary error.
func memErrorf(format string, args ...interface{}) error {
	return &boundaryError{status: StatusErrMem, msg: fmt.Sprintf(format, args...)}
}

// StatusOf maps an error returned by a boundary operation into the outcome
// code space. A nil error is StatusOK; errors that did not originate at
// the boundary report StatusErrRun.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var be *boundaryError
	if errors.As(err, &be) {
		return be.status
	}
	return StatusErrRun
}
