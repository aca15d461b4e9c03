// SPDX-License-Identifier: MPL-2.0

package launchspec

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ErrInvalidOverride is the sentinel error wrapped by InvalidOverrideError.
var ErrInvalidOverride = errors.New("invalid override")

type (
	// OverrideMap maps parameter names to caller-supplied values. It is not
	// required to cover every declared name; resolution falls back to the
	// declared default for names it does not mention.
	OverrideMap map[string]string

	// InvalidOverrideError is returned when an override argument cannot be
	// parsed as a name=value pair. It wraps ErrInvalidOverride for
	// errors.Is() compatibility.
	InvalidOverrideError struct {
		Arg string
	}
)

// Error implements the error interface.
func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("invalid override %q (expected name=value)", e.Arg)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOverrideError) Unwrap() error {
	return ErrInvalidOverride
}

// ParseOverrides parses command-line-style name=value pairs into an
// OverrideMap. A later pair for the same name wins, matching shell
// conventions for repeated flags. The empty string is a legal value
// (e.g. "prefix=").
func ParseOverrides(args []string) (OverrideMap, error) {
	overrides := make(OverrideMap, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, &InvalidOverrideError{Arg: arg}
		}
		overrides[name] = value
	}
	return overrides, nil
}

// Merge returns a new OverrideMap with entries from other layered on top of
// m. Neither input is mutated.
func (m OverrideMap) Merge(other OverrideMap) OverrideMap {
	merged := make(OverrideMap, len(m)+len(other))
	maps.Copy(merged, m)
	maps.Copy(merged, other)
	return merged
}

// Clone returns a copy of the map. A nil map clones to nil.
func (m OverrideMap) Clone() OverrideMap {
	return maps.Clone(m)
}
