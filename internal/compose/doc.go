// SPDX-License-Identifier: MPL-2.0

// Package compose resolves effective parameter values and assembles
// per-target launches. Resolution applies a fixed precedence (forced
// override, then caller override, then declared default) and assembly is
// fail-fast across targets: no invoker is called once any target fails to
// compose. The engine is purely functional over immutable inputs; targets
// are independent of each other.
package compose
