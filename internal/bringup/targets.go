// SPDX-License-Identifier: MPL-2.0

package bringup

import (
	"bringup-cli/internal/compose"
	"bringup-cli/pkg/launchspec"
)

// Target names, in launch order.
const (
	TargetPlanning = "planning"
	TargetControl  = "control"
)

// Targets returns the static target list: the planning stack with
// visualization forced on, then the real-time control stack with
// visualization forced off. A fresh slice is returned on every call so
// callers cannot mutate the canonical list.
func Targets() []compose.TargetSpec {
	return []compose.TargetSpec{
		{
			Name:    TargetPlanning,
			Schemas: []*launchspec.Schema{CommonSchema, PlanningSchema},
			Forced:  launchspec.OverrideMap{"launch_viz": "true"},
			Invocation: compose.Invocation{
				Program: "ros2",
				Args:    []string{"launch", "kortex2_bringup", "kortex_planning.launch.py"},
				Image:   "ghcr.io/kortex/bringup-planning:latest",
			},
		},
		{
			Name:    TargetControl,
			Schemas: []*launchspec.Schema{CommonSchema, ControlSchema},
			Forced:  launchspec.OverrideMap{"launch_viz": "false"},
			Invocation: compose.Invocation{
				Program: "ros2",
				Args:    []string{"launch", "kortex2_bringup", "kortex_control.launch.py"},
				Image:   "ghcr.io/kortex/bringup-control:latest",
			},
		},
	}
}

// Declarations returns the composed declaration set across all targets, for
// the help/usage surface.
func Declarations() []launchspec.Declaration {
	return compose.ComposedDeclarations(Targets())
}
