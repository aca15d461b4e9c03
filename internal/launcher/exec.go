// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"bringup-cli/pkg/platform"
	"bringup-cli/pkg/types"
)

type (
	// ExecInvoker starts subsystems as host processes. The target's binding
	// is passed both as "name:=value" arguments and as BRINGUP_PARAM_*
	// environment variables, so entry points can consume whichever form they
	// prefer. Inside a Flatpak or Snap sandbox the launch goes through the
	// sandbox's spawn command so the subsystem runs on the host.
	ExecInvoker struct {
		execCommand   ExecCommandFunc
		detectSandbox func() platform.SandboxType

		// Logger overrides the default structured logger.
		Logger *log.Logger
	}

	// ExecInvokerOption configures an ExecInvoker.
	ExecInvokerOption func(*ExecInvoker)
)

// WithExecInvokerCommand injects a command constructor, for tests.
func WithExecInvokerCommand(fn ExecCommandFunc) ExecInvokerOption {
	return func(i *ExecInvoker) { i.execCommand = fn }
}

// WithSandboxDetection injects a sandbox probe, for tests.
func WithSandboxDetection(fn func() platform.SandboxType) ExecInvokerOption {
	return func(i *ExecInvoker) { i.detectSandbox = fn }
}

// NewExecInvoker creates a new exec invoker.
func NewExecInvoker(opts ...ExecInvokerOption) *ExecInvoker {
	i := &ExecInvoker{
		execCommand:   exec.CommandContext,
		detectSandbox: platform.DetectSandbox,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Name returns the invoker name.
func (i *ExecInvoker) Name() string {
	return "exec"
}

// Available returns whether this invoker is available. Starting host
// processes needs nothing beyond the OS, so it always is.
func (i *ExecInvoker) Available() bool {
	return true
}

// Invoke starts the target's program and returns a handle for it.
func (i *ExecInvoker) Invoke(ctx context.Context, req Request) (*Handle, error) {
	if req.Program == "" {
		return nil, &InvalidRequestError{Target: req.Target, Reason: "program must not be empty"}
	}

	program := req.Program
	args := append(append([]string{}, req.Args...), ParamArgs(req.Binding)...)
	if st := i.detectSandbox(); st != platform.SandboxNone {
		// The subsystem must run on the host, not inside the sandbox.
		args = append(append(platform.SpawnArgsFor(st), program), args...)
		program = platform.SpawnCommandFor(st)
		i.logger().Debug("launching through sandbox spawn command", "sandbox", st, "spawn", program)
	}
	cmd := i.execCommand(ctx, program, args...)
	cmd.Env = append(os.Environ(), EnvToSlice(ParamEnv(req.Binding))...)
	cmd.Stdin = req.stdin()
	cmd.Stdout = req.stdout()
	cmd.Stderr = req.stderr()

	i.logger().Info("launching subsystem", "target", req.Target, "program", req.Program, "params", bindingLen(req.Binding))

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

func (i *ExecInvoker) logger() *log.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return log.Default()
}
