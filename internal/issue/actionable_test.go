// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load preset",
			},
			expected: "failed to load preset",
		},
		{
			name: "operation and resource",
			err: &ActionableError{
				Operation: "load preset",
				Resource:  "./lab-arm.toml",
			},
			expected: "failed to load preset: ./lab-arm.toml",
		},
		{
			name: "operation, resource, and cause",
			err: &ActionableError{
				Operation: "load preset",
				Resource:  "./lab-arm.toml",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load preset: ./lab-arm.toml: file not found",
		},
		{
			name: "operation and cause without resource",
			err: &ActionableError{
				Operation: "compose targets",
				Cause:     errors.New("missing required parameter"),
			},
			expected: "failed to compose targets: missing required parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying cause")
	err := &ActionableError{
		Operation: "load configuration",
		Cause:     cause,
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is must reach the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "load preset",
		Resource:    "./lab-arm.toml",
		Suggestions: []string{"Check the file for TOML syntax errors", "Verify parameter names against 'bringup params'"},
		Cause:       errors.New("invalid TOML"),
	}

	got := err.Format(false)
	for _, want := range []string{
		"failed to load preset",
		"./lab-arm.toml",
		"• Check the file for TOML syntax errors",
		"• Verify parameter names against 'bringup params'",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Format(false) missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Error chain:") {
		t.Error("non-verbose format must not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Error("verbose format must include the error chain")
	}
	if !strings.Contains(verbose, "1. invalid TOML") {
		t.Errorf("verbose format must enumerate the chain, got:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("compose targets").
		WithResource("control").
		WithSuggestion("Supply robot_ip=<address>").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if err.Operation != "compose targets" || err.Resource != "control" {
		t.Errorf("unexpected fields: %+v", err)
	}
	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("built error must wrap the cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("expected nil without an operation, got %+v", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("expected nil error without an operation, got %v", got)
	}
}

func TestErrorContext_WithSuggestions(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestions("Check CUE syntax", "Run 'bringup config show'").
		Build()
	if len(err.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(err.Suggestions))
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions must be true")
	}
}

func TestWrapHelpers(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("wrapping nil must return nil, got %v", got)
	}
	if got := WrapWithContext(nil, "anything", "res"); got != nil {
		t.Errorf("wrapping nil must return nil, got %v", got)
	}

	cause := errors.New("boom")
	wrapped := WrapWithContext(cause, "invoke target", "planning")
	if wrapped.Error() != "failed to invoke target: planning: boom" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}
