// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for bringup.
//
// This package implements the Cobra command hierarchy for the bringup CLI:
// the root command, launch composition ("up"), the parameter listing
// ("params"), and configuration management.
package cmd
