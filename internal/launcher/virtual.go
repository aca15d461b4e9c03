// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"bringup-cli/pkg/types"
)

// VirtualInvoker runs a target's launch script in the embedded mvdan/sh
// interpreter instead of spawning a host shell. The binding is visible to
// the script as BRINGUP_PARAM_* variables. Useful on hosts without a POSIX
// shell and for hermetic tests.
type VirtualInvoker struct {
	// Logger overrides the default structured logger.
	Logger *log.Logger
}

// NewVirtualInvoker creates a new virtual invoker.
func NewVirtualInvoker() *VirtualInvoker {
	return &VirtualInvoker{}
}

// Name returns the invoker name.
func (i *VirtualInvoker) Name() string {
	return "virtual"
}

// Available returns whether this invoker is available. The interpreter is
// built in, so it always is.
func (i *VirtualInvoker) Available() bool {
	return true
}

// Invoke parses the launch script, starts it in the interpreter, and returns
// a handle for it. A request without a script but with a program falls back
// to a synthesized one-liner, so exec-style invocation payloads run under
// the interpreter too. Syntax errors are reported before anything runs.
func (i *VirtualInvoker) Invoke(ctx context.Context, req Request) (*Handle, error) {
	script := req.Script
	if script == "" {
		if req.Program == "" {
			return nil, &InvalidRequestError{Target: req.Target, Reason: "script or program must not be empty"}
		}
		synthesized, err := scriptForProgram(req.Program, req.Args)
		if err != nil {
			return nil, &InvalidRequestError{Target: req.Target, Reason: err.Error()}
		}
		script = synthesized
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), req.Target)
	if err != nil {
		return nil, &InvalidRequestError{Target: req.Target, Reason: fmt.Sprintf("script syntax error: %v", err)}
	}

	env := ParamEnv(req.Binding)
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(append(os.Environ(), EnvToSlice(env)...)...)),
		interp.StdIO(req.stdin(), req.stdout(), req.stderr()),
		interp.Params(ParamArgs(req.Binding)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	i.logger().Info("launching subsystem", "target", req.Target, "invoker", "virtual", "params", bindingLen(req.Binding))

	done := make(chan *Result, 1)
	go func() {
		if err := runner.Run(ctx, prog); err != nil {
			var exitStatus interp.ExitStatus
			if errors.As(err, &exitStatus) {
				done <- NewExitCodeResult(types.ExitCode(exitStatus))
				return
			}
			done <- NewErrorResult(1, fmt.Errorf("script execution failed: %w", err))
			return
		}
		done <- NewSuccessResult()
	}()

	return NewHandle(req.Target, 0, func() *Result { return <-done }), nil
}

// scriptForProgram renders a Program/Args invocation as a one-line script.
// The trailing "$@" forwards the parameter arguments the runner receives, so
// the subsystem sees the same "name:=value" pairs the exec invoker appends.
func scriptForProgram(program string, args []string) (string, error) {
	words := make([]string, 0, len(args)+2)
	for _, word := range append([]string{program}, args...) {
		quoted, err := syntax.Quote(word, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("cannot quote %q: %v", word, err)
		}
		words = append(words, quoted)
	}
	words = append(words, `"$@"`)
	return strings.Join(words, " "), nil
}

func (i *VirtualInvoker) logger() *log.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return log.Default()
}
