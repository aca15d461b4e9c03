// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"os/exec"
	"slices"
	"testing"

	"bringup-cli/pkg/launchspec"
)

// fakeExecCommand records the engine invocation and substitutes a no-op
// process so tests never touch a real container engine.
type fakeExecCommand struct {
	name string
	args []string
}

func (f *fakeExecCommand) run(ctx context.Context, name string, arg ...string) *exec.Cmd {
	f.name = name
	f.args = arg
	return exec.CommandContext(ctx, "true")
}

func foundLookPath(string) (string, error) { return "/usr/bin/fake", nil }

func missingLookPath(name string) (string, error) { return "", exec.ErrNotFound }

func TestNewContainerInvoker_AutodetectPrefersPodman(t *testing.T) {
	t.Parallel()
	inv, err := NewContainerInvoker("", WithLookPath(foundLookPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Engine() != EnginePodman {
		t.Errorf("expected podman, got %q", inv.Engine())
	}
}

func TestNewContainerInvoker_NoEngineOnPath(t *testing.T) {
	t.Parallel()
	_, err := NewContainerInvoker("", WithLookPath(missingLookPath))
	if !errors.Is(err, ErrInvokerUnavailable) {
		t.Fatalf("expected ErrInvokerUnavailable, got %v", err)
	}
}

func TestNewContainerInvoker_RejectsUnknownEngine(t *testing.T) {
	t.Parallel()
	_, err := NewContainerInvoker("lxc")
	if !errors.Is(err, ErrInvalidContainerEngine) {
		t.Fatalf("expected ErrInvalidContainerEngine, got %v", err)
	}
}

func TestContainerInvoker_BuildsRunArgs(t *testing.T) {
	t.Parallel()
	fake := &fakeExecCommand{}
	inv, err := NewContainerInvoker(EngineDocker,
		WithExecCommand(fake.run),
		WithLookPath(foundLookPath),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	binding, _ := launchspec.NewBinding(
		launchspec.Pair{Name: "robot_ip", Value: "192.0.2.5"},
	)
	handle, err := inv.Invoke(context.Background(), Request{
		Target:  "control",
		Image:   "arm-stack:latest",
		Program: "launch_control",
		Args:    []string{"--realtime"},
		Binding: binding,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result := handle.Wait(); result.Error != nil {
		t.Fatalf("unexpected result error: %v", result.Error)
	}

	if fake.name != "docker" {
		t.Errorf("expected docker binary, got %q", fake.name)
	}
	want := []string{
		"run", "--rm", "--name", "bringup-control",
		"-e", "BRINGUP_PARAM_ROBOT_IP=192.0.2.5",
		"arm-stack:latest", "launch_control", "--realtime", "robot_ip:=192.0.2.5",
	}
	if !slices.Equal(fake.args, want) {
		t.Errorf("expected args %v, got %v", want, fake.args)
	}
}

func TestContainerInvoker_MissingImage(t *testing.T) {
	t.Parallel()
	inv, err := NewContainerInvoker(EngineDocker, WithLookPath(foundLookPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = inv.Invoke(context.Background(), Request{Target: "control", Program: "launch_control"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
