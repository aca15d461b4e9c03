// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes runtime.GOOS string constants and detects
// application sandboxes (Flatpak, Snap) that change how host processes
// and container engines can be reached.
package platform
