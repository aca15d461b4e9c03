// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"bringup-cli/pkg/launchspec"
)

var (
	// ErrInvalidRequest is the sentinel error wrapped by InvalidRequestError.
	ErrInvalidRequest = errors.New("invalid launch request")
	// ErrInvokerUnavailable is returned when an invoker cannot run on this
	// host (e.g. no container engine installed).
	ErrInvokerUnavailable = errors.New("invoker unavailable")
)

type (
	// Invoker starts one subsystem process from a finalized argument
	// binding. Implementations must treat the binding as read-only.
	Invoker interface {
		// Name returns the invoker name (exec, virtual, container).
		Name() string
		// Available returns whether this invoker can run on this host.
		Available() bool
		// Invoke starts the subsystem described by req and returns a
		// handle for it. Invoke returns once the subsystem has started;
		// callers wait for completion through the handle.
		Invoke(ctx context.Context, req Request) (*Handle, error)
	}

	// Request describes one subsystem launch: the target's identity, how to
	// start it, and the argument binding produced by the composer.
	Request struct {
		// Target is the subsystem target name (e.g. "planning", "control").
		Target string
		// Program is the executable to start (exec and container invokers).
		Program string
		// Args are fixed arguments placed before the parameter arguments.
		Args []string
		// Script is the launch script (virtual invoker).
		Script string
		// Image is the container image (container invoker).
		Image string
		// Binding is the finalized parameter binding for the target.
		Binding *launchspec.Binding

		// Stdin, Stdout, and Stderr wire the subsystem's standard streams.
		// Nil fields default to the process streams.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// InvalidRequestError is returned when a Request is missing the fields
	// an invoker needs. It wraps ErrInvalidRequest for errors.Is()
	// compatibility.
	InvalidRequestError struct {
		Target string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid launch request for target %q: %s", e.Target, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

// stdin returns the request's stdin, defaulting to os.Stdin.
func (r Request) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

// stdout returns the request's stdout, defaulting to os.Stdout.
func (r Request) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

// stderr returns the request's stderr, defaulting to os.Stderr.
func (r Request) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
