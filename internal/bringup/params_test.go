// SPDX-License-Identifier: MPL-2.0

package bringup

import (
	"slices"
	"testing"

	"bringup-cli/pkg/launchspec"
)

func TestCommonSchema_RequiredParameters(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"robot_type", "robot_ip"} {
		d, ok := CommonSchema.Lookup(name)
		if !ok {
			t.Fatalf("common schema is missing %q", name)
		}
		if !d.Required {
			t.Errorf("%q must be required", name)
		}
		if d.DefaultValue != "" {
			t.Errorf("%q is required and must not carry a default, got %q", name, d.DefaultValue)
		}
	}
}

func TestSchemas_DeclarationsAreValid(t *testing.T) {
	t.Parallel()
	for _, schema := range []*launchspec.Schema{CommonSchema, PlanningSchema, ControlSchema} {
		for _, d := range schema.Declarations() {
			if valid, errs := d.IsValid(); !valid {
				t.Errorf("%s declaration %q: %v", schema.Title(), d.Name, errs)
			}
		}
	}
}

func TestTargetSchemas_DeclareViz(t *testing.T) {
	t.Parallel()
	for _, schema := range []*launchspec.Schema{PlanningSchema, ControlSchema} {
		d, ok := schema.Lookup("launch_viz")
		if !ok {
			t.Fatalf("%s schema must declare launch_viz", schema.Title())
		}
		if d.GetType() != launchspec.TypeBool {
			t.Errorf("%s launch_viz must be boolean, got %q", schema.Title(), d.GetType())
		}
		if d.DefaultValue != "false" {
			t.Errorf("%s launch_viz default must be \"false\", got %q", schema.Title(), d.DefaultValue)
		}
	}
}

func TestSchemas_NoCollisionWithCommon(t *testing.T) {
	t.Parallel()
	common := CommonSchema.Names()
	for _, schema := range []*launchspec.Schema{PlanningSchema, ControlSchema} {
		for _, name := range schema.Names() {
			if slices.Contains(common, name) {
				t.Errorf("%s schema redeclares common parameter %q", schema.Title(), name)
			}
		}
	}
}
