// SPDX-License-Identifier: MPL-2.0

// Package bringup holds the static launch configuration: the parameter
// declaration tables shared by and specific to each subsystem target, the
// target list itself, and preset file loading. The tables are literal data
// built once at package init and never mutated.
package bringup
