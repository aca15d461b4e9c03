// SPDX-License-Identifier: MPL-2.0

package bringup

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"bringup-cli/pkg/launchspec"
)

// ErrInvalidPreset is the sentinel error wrapped by InvalidPresetError.
var ErrInvalidPreset = errors.New("invalid preset")

type (
	// presetFile is the on-disk shape of a preset: a [params] table mapping
	// parameter names to scalar values.
	presetFile struct {
		Params map[string]any `toml:"params"`
	}

	// InvalidPresetError is returned when a preset file cannot be read,
	// parsed, or carries a non-scalar parameter value. It wraps
	// ErrInvalidPreset for errors.Is() compatibility.
	InvalidPresetError struct {
		Path   string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("preset %q: %s", e.Path, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPresetError) Unwrap() error {
	return ErrInvalidPreset
}

// LoadPreset reads a TOML preset file and returns its [params] table as an
// OverrideMap. Values must be scalars (string, bool, integer, float); the
// caller layers explicit CLI overrides on top with OverrideMap.Merge, so a
// preset never beats a flag.
func LoadPreset(path string) (launchspec.OverrideMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidPresetError{Path: path, Reason: err.Error()}
	}

	var preset presetFile
	if err := toml.Unmarshal(data, &preset); err != nil {
		return nil, &InvalidPresetError{Path: path, Reason: err.Error()}
	}

	overrides := make(launchspec.OverrideMap, len(preset.Params))
	for name, raw := range preset.Params {
		value, err := presetValueString(raw)
		if err != nil {
			return nil, &InvalidPresetError{Path: path, Reason: fmt.Sprintf("param %q: %v", name, err)}
		}
		overrides[name] = value
	}
	return overrides, nil
}

// presetValueString renders a decoded TOML scalar as the string form the
// resolver validates against the declared type.
func presetValueString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("value must be a scalar, got %T", raw)
	}
}
