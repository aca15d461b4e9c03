// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"bringup-cli/internal/launcher"
	"bringup-cli/pkg/launchspec"
)

// ErrDuplicateTarget is returned when two target specs share a name.
var ErrDuplicateTarget = errors.New("duplicate target")

type (
	// Invocation describes how the launcher starts a target once its
	// binding is composed. Which fields matter depends on the invoker:
	// Program/Args for exec, Script for virtual (synthesized from
	// Program/Args when empty), Image+Program for container.
	Invocation struct {
		Program string
		Args    []string
		Script  string
		Image   string
	}

	// TargetSpec declares one subsystem target: the schemas contributing
	// its parameter set, the overrides the composition forces for it
	// regardless of caller input, and how to start it.
	TargetSpec struct {
		// Name identifies the target (e.g. "planning", "control").
		Name string
		// Schemas are merged, in order, into the target's parameter set.
		// The merge must be collision-free; sharing names with another
		// target's private schemas is fine.
		Schemas []*launchspec.Schema
		// Forced are composition-time overrides for this target. They take
		// precedence over caller overrides for their keys.
		Forced launchspec.OverrideMap
		// Invocation is the launcher payload, opaque to resolution.
		Invocation Invocation
	}

	// CompositionError wraps a merge, resolve, or invoke failure with the
	// offending target's name.
	CompositionError struct {
		Target string
		Err    error
	}

	// Assembler composes argument bindings for a set of targets and hands
	// them to a launch invoker.
	Assembler struct {
		invoker launcher.Invoker
		opts    Options

		// Logger overrides the default structured logger.
		Logger *log.Logger
	}
)

// Error implements the error interface.
func (e *CompositionError) Error() string {
	return fmt.Sprintf("target %q: %v", e.Target, e.Err)
}

// Unwrap returns the wrapped cause for errors.Is/As.
func (e *CompositionError) Unwrap() error {
	return e.Err
}

// NewAssembler creates an assembler that launches through invoker.
func NewAssembler(invoker launcher.Invoker, opts Options) *Assembler {
	return &Assembler{invoker: invoker, opts: opts}
}

// Assemble produces one finalized binding per target. Each target's schemas
// are merged independently (collisions within one target are an error;
// duplicates across different targets are fine) and resolved against the
// shared caller overrides plus the target's forced overrides.
//
// Assembly is fail-fast: the first target to fail aborts the batch with a
// CompositionError naming it, and no partial result is returned. In strict
// mode a caller override key that matches no declaration of any target is an
// UnknownParameterError; forced override keys outside their own target's
// schema are always an error, strict or not, because they indicate a bug in
// the static target tables rather than bad caller input.
func (a *Assembler) Assemble(targets []TargetSpec, callerOverrides launchspec.OverrideMap) (map[string]*launchspec.Binding, error) {
	if err := checkTargetNames(targets); err != nil {
		return nil, err
	}
	if !a.opts.Permissive {
		if err := checkCallerKeys(targets, callerOverrides); err != nil {
			return nil, err
		}
	}

	bindings := make(map[string]*launchspec.Binding, len(targets))
	for _, target := range targets {
		binding, err := a.assembleTarget(target, callerOverrides)
		if err != nil {
			return nil, &CompositionError{Target: target.Name, Err: err}
		}
		bindings[target.Name] = binding
	}
	return bindings, nil
}

// Launch assembles every target and only then invokes them, in declaration
// order. Once any target fails to compose, no invoker call is made for any
// target; a multi-subsystem run must not proceed partially configured. An
// invoker failure aborts the remaining launches; the handles of already
// started targets are returned alongside the error so the caller can wait
// on or stop them.
func (a *Assembler) Launch(ctx context.Context, targets []TargetSpec, callerOverrides launchspec.OverrideMap) ([]*launcher.Handle, error) {
	bindings, err := a.Assemble(targets, callerOverrides)
	if err != nil {
		return nil, err
	}

	handles := make([]*launcher.Handle, 0, len(targets))
	for _, target := range targets {
		a.logger().Debug("invoking target", "target", target.Name, "invoker", a.invoker.Name())
		handle, err := a.invoker.Invoke(ctx, launcher.Request{
			Target:  target.Name,
			Program: target.Invocation.Program,
			Args:    target.Invocation.Args,
			Script:  target.Invocation.Script,
			Image:   target.Invocation.Image,
			Binding: bindings[target.Name],
		})
		if err != nil {
			return handles, &CompositionError{Target: target.Name, Err: err}
		}
		handles = append(handles, handle)
	}
	return handles, nil
}

// ComposedDeclarations returns the union of all targets' declarations for
// the help/usage surface, deduplicated by name. Order is first appearance
// across targets; duplicates across targets are expected (that is how
// common schemas are shared) and only the first declaration is kept.
func ComposedDeclarations(targets []TargetSpec) []launchspec.Declaration {
	var decls []launchspec.Declaration
	seen := make(map[string]bool)
	for _, target := range targets {
		for _, schema := range target.Schemas {
			for _, d := range schema.Declarations() {
				if seen[d.Name] {
					continue
				}
				seen[d.Name] = true
				decls = append(decls, d)
			}
		}
	}
	return decls
}

// assembleTarget merges and resolves one target.
func (a *Assembler) assembleTarget(target TargetSpec, callerOverrides launchspec.OverrideMap) (*launchspec.Binding, error) {
	merged, err := launchspec.Merge(target.Name, target.Schemas...)
	if err != nil {
		return nil, err
	}
	if err := checkForcedKeys(merged, target.Forced); err != nil {
		return nil, err
	}
	// Caller keys were validated against the composed union; keys belonging
	// to another target's schema are expected here.
	return Resolve(merged, callerOverrides, target.Forced, Options{Permissive: true})
}

// checkTargetNames rejects duplicate target names.
func checkTargetNames(targets []TargetSpec) error {
	seen := make(map[string]bool, len(targets))
	for _, target := range targets {
		if seen[target.Name] {
			return fmt.Errorf("%w: %q declared twice", ErrDuplicateTarget, target.Name)
		}
		seen[target.Name] = true
	}
	return nil
}

// checkCallerKeys fails on the lexically-first caller override key unknown
// to every target.
func checkCallerKeys(targets []TargetSpec, callerOverrides launchspec.OverrideMap) error {
	known := make(map[string]bool)
	for _, d := range ComposedDeclarations(targets) {
		known[d.Name] = true
	}
	var unknown []string
	for name := range callerOverrides {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownParameterError{Name: unknown[0]}
}

// checkForcedKeys requires every forced key to be declared in the target's
// merged schema.
func checkForcedKeys(merged *launchspec.Schema, forced launchspec.OverrideMap) error {
	var unknown []string
	for name := range forced {
		if !merged.Has(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("forced override: %w", &UnknownParameterError{Name: unknown[0]})
}

func (a *Assembler) logger() *log.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return log.Default()
}
