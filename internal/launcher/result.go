// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"bringup-cli/pkg/types"
)

type (
	// Result is the outcome of one subsystem run.
	Result struct {
		// ExitCode is the subsystem's exit status.
		ExitCode types.ExitCode
		// Error is set for infrastructure failures (failed to start,
		// engine missing), not for ordinary non-zero exits.
		Error error
	}

	// Handle identifies a started subsystem. Wait blocks until the
	// subsystem exits and returns its result; it is safe to call once.
	Handle struct {
		target string
		pid    int
		wait   func() *Result
	}
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}

// NewHandle creates a handle for a started subsystem. The wait function
// blocks until the subsystem exits; a nil wait yields an immediate success.
func NewHandle(target string, pid int, wait func() *Result) *Handle {
	if wait == nil {
		wait = NewSuccessResult
	}
	return &Handle{target: target, pid: pid, wait: wait}
}

// Target returns the target name the handle belongs to.
func (h *Handle) Target() string { return h.target }

// PID returns the operating system process ID, or 0 when the subsystem does
// not run as a separate process (virtual invoker).
func (h *Handle) PID() int { return h.pid }

// Wait blocks until the subsystem exits and returns its result.
func (h *Handle) Wait() *Result { return h.wait() }
