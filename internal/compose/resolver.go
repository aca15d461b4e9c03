// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"errors"
	"fmt"
	"sort"

	"bringup-cli/pkg/launchspec"
)

var (
	// ErrMissingRequiredParameter is the sentinel error wrapped by MissingRequiredParameterError.
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	// ErrUnknownParameter is the sentinel error wrapped by UnknownParameterError.
	ErrUnknownParameter = errors.New("unknown parameter")
)

type (
	// Options configures resolution behavior. The zero value is strict:
	// override keys that match no declaration are an error. Permissive mode
	// silently ignores them, for callers that share one override set across
	// compositions with differing schemas.
	Options struct {
		// Permissive tolerates override keys outside the schema.
		Permissive bool
	}

	// MissingRequiredParameterError is returned when a declaration without
	// a default has no caller or forced override. It wraps
	// ErrMissingRequiredParameter for errors.Is() compatibility.
	MissingRequiredParameterError struct {
		Name string
	}

	// UnknownParameterError is returned in strict mode when an override key
	// matches no declaration in the schema. It wraps ErrUnknownParameter
	// for errors.Is() compatibility.
	UnknownParameterError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *MissingRequiredParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q (no default declared; supply %s=<value>)", e.Name, e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MissingRequiredParameterError) Unwrap() error {
	return ErrMissingRequiredParameter
}

// Error implements the error interface.
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q: no such declaration in the target's schema", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownParameterError) Unwrap() error {
	return ErrUnknownParameter
}

// Resolve produces the effective value for every declaration in schema,
// in schema order. Precedence per parameter:
//
//  1. forced: composition-time policy, independent of caller input
//  2. overrides: caller-supplied values
//  3. the declared default, unless the declaration is required
//
// A required declaration with no override fails with
// MissingRequiredParameterError. The chosen value is validated against the
// declared type. The returned binding is total over schema.Names() and
// contains nothing outside the schema. Resolution is deterministic:
// identical inputs yield identical bindings.
func Resolve(schema *launchspec.Schema, overrides, forced launchspec.OverrideMap, opts Options) (*launchspec.Binding, error) {
	if !opts.Permissive {
		if err := rejectUnknownKeys(schema, overrides, forced); err != nil {
			return nil, err
		}
	}

	pairs := make([]launchspec.Pair, 0, schema.Len())
	for _, d := range schema.Declarations() {
		value, err := effectiveValue(d, overrides, forced)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, launchspec.Pair{Name: d.Name, Value: value})
	}
	return launchspec.NewBinding(pairs...)
}

// effectiveValue picks one declaration's value by precedence and validates
// it against the declared type.
func effectiveValue(d launchspec.Declaration, overrides, forced launchspec.OverrideMap) (string, error) {
	if value, ok := forced[d.Name]; ok {
		if err := d.ValidateValue(value); err != nil {
			return "", fmt.Errorf("forced override: %w", err)
		}
		return value, nil
	}
	if value, ok := overrides[d.Name]; ok {
		if err := d.ValidateValue(value); err != nil {
			return "", err
		}
		return value, nil
	}
	if d.Required {
		return "", &MissingRequiredParameterError{Name: d.Name}
	}
	return d.DefaultValue, nil
}

// rejectUnknownKeys fails on the lexically-first override key that matches
// no declaration, so strict-mode errors are deterministic regardless of map
// iteration order.
func rejectUnknownKeys(schema *launchspec.Schema, overrides, forced launchspec.OverrideMap) error {
	var unknown []string
	for name := range overrides {
		if !schema.Has(name) {
			unknown = append(unknown, name)
		}
	}
	for name := range forced {
		if !schema.Has(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownParameterError{Name: unknown[0]}
}
