// SPDX-License-Identifier: MPL-2.0

// Package launchspec defines the parameter declaration model for subsystem
// launches: named, typed parameter declarations grouped into immutable
// schemas, collision-free schema merging, and the ordered argument bindings
// produced when a schema is resolved against caller overrides.
package launchspec
