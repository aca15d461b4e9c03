// SPDX-License-Identifier: MPL-2.0

// Package launcher is the boundary between the composition engine and the
// subsystem processes it configures. The composer hands each target's
// finalized argument binding to an Invoker; what the subsystem does with its
// parameters is invisible to the core. Three invokers are provided: exec
// (host processes), virtual (embedded shell interpreter), and container
// (docker/podman CLI). Supervision beyond start-and-wait is out of scope.
package launcher
