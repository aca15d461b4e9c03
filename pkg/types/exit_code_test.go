// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()
	for _, c := range []ExitCode{0, 1, 127, 255} {
		if err := c.Validate(); err != nil {
			t.Errorf("expected %d to be valid, got %v", c, err)
		}
	}
	for _, c := range []ExitCode{-1, 256, 1000} {
		err := c.Validate()
		if !errors.Is(err, ErrInvalidExitCode) {
			t.Errorf("expected ErrInvalidExitCode for %d, got %v", c, err)
		}
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	t.Parallel()
	if !ExitCode(0).IsSuccess() {
		t.Error("0 must be success")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("1 must not be success")
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()
	if s := ExitCode(127).String(); s != "127" {
		t.Errorf("expected \"127\", got %q", s)
	}
}
