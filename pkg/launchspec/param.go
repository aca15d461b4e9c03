// SPDX-License-Identifier: MPL-2.0

package launchspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// TypeString is the default parameter type for string values
	TypeString ValueType = "string"
	// TypeBool is for boolean parameters (true/false)
	TypeBool ValueType = "bool"
	// TypeInt is for integer parameters
	TypeInt ValueType = "int"
	// TypeFloat is for floating-point parameters
	TypeFloat ValueType = "float"
)

var (
	// ErrInvalidValueType is returned when a ValueType value is not one of the defined types.
	ErrInvalidValueType = errors.New("invalid value type")
	// ErrInvalidDeclaration is the sentinel error wrapped by InvalidDeclarationError.
	ErrInvalidDeclaration = errors.New("invalid parameter declaration")
)

type (
	// ValueType represents the data type of a parameter value
	ValueType string

	// InvalidValueTypeError is returned when a ValueType value is not recognized.
	// It wraps ErrInvalidValueType for errors.Is() compatibility.
	InvalidValueTypeError struct {
		Value ValueType
	}

	// InvalidDeclarationError is returned when a Declaration has invalid fields.
	// It wraps ErrInvalidDeclaration for errors.Is() compatibility.
	InvalidDeclarationError struct {
		Name        string
		FieldErrors []error
	}

	// Declaration is a single named launch parameter: a name, a human
	// description, and either a default value or the required marker.
	// A required declaration has no default; the caller must supply a value
	// at resolve time.
	Declaration struct {
		// Name is the parameter name (starts with a letter, alphanumeric/hyphen/underscore)
		Name string `json:"name"`
		// Description provides help text for the parameter
		Description string `json:"description"`
		// DefaultValue is the default value for the parameter.
		// Ignored when Required is true.
		DefaultValue string `json:"default_value,omitempty"`
		// Required indicates the parameter has no default and must be
		// supplied by the caller (optional, defaults to false)
		Required bool `json:"required,omitempty"`
		// Type specifies the data type of the parameter (optional, defaults to "string")
		// Supported types: "string", "bool", "int", "float"
		Type ValueType `json:"type,omitempty"`
	}
)

// Error implements the error interface for InvalidValueTypeError.
func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("invalid value type %q (valid: string, bool, int, float)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidValueTypeError) Unwrap() error {
	return ErrInvalidValueType
}

// Error implements the error interface for InvalidDeclarationError.
func (e *InvalidDeclarationError) Error() string {
	return fmt.Sprintf("invalid declaration %q: %d field error(s)", e.Name, len(e.FieldErrors))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDeclarationError) Unwrap() error {
	return ErrInvalidDeclaration
}

// IsValid returns whether the ValueType is one of the defined types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid and treated as "string" by GetType().
func (vt ValueType) IsValid() (bool, []error) {
	switch vt {
	case TypeString, TypeBool, TypeInt, TypeFloat, "":
		return true, nil
	default:
		return false, []error{&InvalidValueTypeError{Value: vt}}
	}
}

// GetType returns the effective type of the declaration (defaults to "string" if not specified)
func (d *Declaration) GetType() ValueType {
	if d.Type == "" {
		return TypeString
	}
	return d.Type
}

// IsValid returns whether the Declaration has a legal name, a recognized
// type, and a default value that parses as that type. A required declaration
// must not carry a default.
func (d *Declaration) IsValid() (bool, []error) {
	var errs []error
	if !isValidParamName(d.Name) {
		errs = append(errs, fmt.Errorf("parameter name %q must start with a letter and contain only letters, digits, hyphens, and underscores", d.Name))
	}
	if valid, typeErrs := d.Type.IsValid(); !valid {
		errs = append(errs, typeErrs...)
	}
	if d.Required && d.DefaultValue != "" {
		errs = append(errs, fmt.Errorf("parameter %q is required and must not declare a default value", d.Name))
	}
	if !d.Required && d.DefaultValue != "" {
		if err := ValidateValueType(d.DefaultValue, d.GetType()); err != nil {
			errs = append(errs, fmt.Errorf("default value for parameter %q: %w", d.Name, err))
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidDeclarationError{Name: d.Name, FieldErrors: errs}}
	}
	return true, nil
}

// ValidateValue validates a caller-supplied value against the declared type.
// Returns nil if the value is valid, or an error describing the issue.
func (d *Declaration) ValidateValue(value string) error {
	if err := ValidateValueType(value, d.GetType()); err != nil {
		return fmt.Errorf("parameter '%s' value '%s' is invalid: %s", d.Name, value, err.Error())
	}
	return nil
}

// ValidateValueType checks that a string value parses as the given type.
func ValidateValueType(value string, vt ValueType) error {
	switch vt {
	case TypeBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("expected a boolean (true/false)")
		}
	case TypeInt:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Errorf("expected an integer")
		}
	case TypeFloat:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("expected a number")
		}
	case TypeString, "":
		// Any string is valid.
	default:
		return &InvalidValueTypeError{Value: vt}
	}
	return nil
}

// isValidParamName reports whether name is non-empty, starts with a letter,
// and contains only letters, digits, hyphens, and underscores.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 {
			if !isLetter {
				return false
			}
			continue
		}
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '-' && r != '_' {
			return false
		}
	}
	return !strings.HasPrefix(name, "-")
}
