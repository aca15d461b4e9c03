// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"

	"bringup-cli/pkg/types"
)

const (
	// EngineDocker runs subsystems through the docker CLI.
	EngineDocker ContainerEngine = "docker"
	// EnginePodman runs subsystems through the podman CLI.
	EnginePodman ContainerEngine = "podman"
)

var (
	// ErrInvalidContainerEngine is the sentinel error wrapped by InvalidContainerEngineError.
	ErrInvalidContainerEngine = errors.New("invalid container engine")
	// ErrNoContainerEngine is returned when neither docker nor podman is on PATH.
	ErrNoContainerEngine = fmt.Errorf("%w: neither docker nor podman found on PATH", ErrInvokerUnavailable)
)

type (
	// ContainerEngine selects which container CLI runs the subsystem.
	ContainerEngine string

	// InvalidContainerEngineError is returned when a ContainerEngine value
	// is not recognized. It wraps ErrInvalidContainerEngine for errors.Is()
	// compatibility.
	InvalidContainerEngineError struct {
		Value ContainerEngine
	}

	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// ContainerInvoker starts subsystems inside containers via an exec'd
	// docker or podman CLI. The binding is injected as BRINGUP_PARAM_*
	// environment variables and appended as "name:=value" arguments after
	// the program, the same contract the exec invoker provides on the host.
	ContainerInvoker struct {
		engine      ContainerEngine
		execCommand ExecCommandFunc
		lookPath    func(string) (string, error)

		// Logger overrides the default structured logger.
		Logger *log.Logger
	}

	// ContainerInvokerOption configures a ContainerInvoker.
	ContainerInvokerOption func(*ContainerInvoker)
)

// Error implements the error interface.
func (e *InvalidContainerEngineError) Error() string {
	return fmt.Sprintf("invalid container engine %q (valid: docker, podman)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidContainerEngineError) Unwrap() error {
	return ErrInvalidContainerEngine
}

// IsValid returns whether the ContainerEngine is one of the supported
// engines, and a list of validation errors if it is not. The zero value is
// valid; it means autodetect.
func (ce ContainerEngine) IsValid() (bool, []error) {
	switch ce {
	case EngineDocker, EnginePodman, "":
		return true, nil
	default:
		return false, []error{&InvalidContainerEngineError{Value: ce}}
	}
}

// WithExecCommand injects a command constructor, for tests.
func WithExecCommand(fn ExecCommandFunc) ContainerInvokerOption {
	return func(i *ContainerInvoker) { i.execCommand = fn }
}

// WithLookPath injects a PATH lookup, for tests.
func WithLookPath(fn func(string) (string, error)) ContainerInvokerOption {
	return func(i *ContainerInvoker) { i.lookPath = fn }
}

// NewContainerInvoker creates a container invoker for the given engine.
// An empty engine autodetects, preferring podman (rootless) over docker.
func NewContainerInvoker(engine ContainerEngine, opts ...ContainerInvokerOption) (*ContainerInvoker, error) {
	if isValid, errs := engine.IsValid(); !isValid {
		return nil, errs[0]
	}
	i := &ContainerInvoker{
		engine:      engine,
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.engine == "" {
		detected, err := i.detect()
		if err != nil {
			return nil, err
		}
		i.engine = detected
	}
	return i, nil
}

// Name returns the invoker name.
func (i *ContainerInvoker) Name() string {
	return "container"
}

// Available returns whether the selected engine binary is on PATH.
func (i *ContainerInvoker) Available() bool {
	_, err := i.lookPath(string(i.engine))
	return err == nil
}

// Engine returns the engine the invoker resolved to.
func (i *ContainerInvoker) Engine() ContainerEngine {
	return i.engine
}

// Invoke starts the target's program inside a container and returns a
// handle for it.
func (i *ContainerInvoker) Invoke(ctx context.Context, req Request) (*Handle, error) {
	if req.Image == "" {
		return nil, &InvalidRequestError{Target: req.Target, Reason: "image must not be empty"}
	}
	if req.Program == "" {
		return nil, &InvalidRequestError{Target: req.Target, Reason: "program must not be empty"}
	}
	if !i.Available() {
		return nil, fmt.Errorf("%w: %s not found on PATH", ErrInvokerUnavailable, i.engine)
	}

	cmd := i.execCommand(ctx, string(i.engine), i.buildRunArgs(req)...)
	cmd.Stdin = req.stdin()
	cmd.Stdout = req.stdout()
	cmd.Stderr = req.stderr()

	i.logger().Info("launching subsystem", "target", req.Target, "engine", i.engine, "image", req.Image)

	if err := cmd.Start(); err != nil {
		return nil, &InvalidRequestError{Target: req.Target, Reason: err.Error()}
	}

	return NewHandle(req.Target, cmd.Process.Pid, func() *Result {
		if err := cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return NewExitCodeResult(types.ExitCode(exitErr.ExitCode()))
			}
			return NewErrorResult(1, err)
		}
		return NewSuccessResult()
	}), nil
}

// buildRunArgs assembles the engine's run arguments: an ephemeral container
// named after the target, the binding as environment, then the program and
// its parameter arguments.
func (i *ContainerInvoker) buildRunArgs(req Request) []string {
	args := []string{"run", "--rm", "--name", "bringup-" + req.Target}
	for _, kv := range EnvToSlice(ParamEnv(req.Binding)) {
		args = append(args, "-e", kv)
	}
	args = append(args, req.Image, req.Program)
	args = append(args, req.Args...)
	args = append(args, ParamArgs(req.Binding)...)
	return args
}

// detect probes PATH for a usable engine, preferring podman.
func (i *ContainerInvoker) detect() (ContainerEngine, error) {
	for _, engine := range []ContainerEngine{EnginePodman, EngineDocker} {
		if _, err := i.lookPath(string(engine)); err == nil {
			return engine, nil
		}
	}
	return "", ErrNoContainerEngine
}

func (i *ContainerInvoker) logger() *log.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return log.Default()
}
