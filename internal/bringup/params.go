// SPDX-License-Identifier: MPL-2.0

package bringup

import "bringup-cli/pkg/launchspec"

// The declaration tables below mirror the arm's launch arguments. Common
// parameters feed every target; the planning and control tables are private
// to their target. launch_viz is deliberately declared per target rather
// than in the common table so each target can force its own value.
var (
	// CommonSchema declares the parameters shared by every subsystem target.
	CommonSchema = launchspec.MustSchema("common",
		launchspec.Declaration{
			Name:        "robot_type",
			Description: "Type/series of robot.",
			Required:    true,
		},
		launchspec.Declaration{
			Name:        "robot_ip",
			Description: "IP address by which the robot can be reached.",
			Required:    true,
		},
		launchspec.Declaration{
			Name:         "description_package",
			Description:  "Description package with robot URDF/XACRO files. Usually the argument is not set, it enables use of a custom description.",
			DefaultValue: "kortex_description",
		},
		launchspec.Declaration{
			Name:         "planning_config_package",
			Description:  "Motion-planning configuration package for the robot. Usually the argument is not set, it enables use of a custom config package.",
			DefaultValue: "gen3_robotiq_2f_85_planning_config",
		},
		launchspec.Declaration{
			Name:         "description_file",
			Description:  "URDF/XACRO description file with the robot.",
			DefaultValue: "gen3.xacro",
		},
		launchspec.Declaration{
			Name:         "prefix",
			Description:  "Prefix of the joint names, useful for multi-robot setup. If changed then also joint names in the controllers' configuration have to be updated.",
			DefaultValue: "",
		},
		launchspec.Declaration{
			Name:         "gripper",
			Description:  "Name of the gripper attached to the arm.",
			DefaultValue: "robotiq_2f_85",
		},
		launchspec.Declaration{
			Name:         "use_fake_hardware",
			Description:  "Start robot with fake hardware mirroring command to its states.",
			DefaultValue: "false",
			Type:         launchspec.TypeBool,
		},
		launchspec.Declaration{
			Name:         "fake_sensor_commands",
			Description:  "Enable fake command interfaces for sensors used for simple simulations. Used only if 'use_fake_hardware' parameter is true.",
			DefaultValue: "false",
			Type:         launchspec.TypeBool,
		},
	)

	// PlanningSchema declares the parameters private to the planning target.
	PlanningSchema = launchspec.MustSchema("planning",
		launchspec.Declaration{
			Name:         "planning_config_file",
			Description:  "SRDF/XACRO description file with the robot, for the planning stack.",
			DefaultValue: "gen3_robotiq_2f_85.srdf.xacro",
		},
		launchspec.Declaration{
			Name:         "launch_viz",
			Description:  "Start the visualization UI alongside this target.",
			DefaultValue: "false",
			Type:         launchspec.TypeBool,
		},
	)

	// ControlSchema declares the parameters private to the control target.
	ControlSchema = launchspec.MustSchema("control",
		launchspec.Declaration{
			Name:         "runtime_config_package",
			Description:  "Package with the controller's configuration in 'config' folder. Usually the argument is not set, it enables use of a custom setup.",
			DefaultValue: "kortex2_bringup",
		},
		launchspec.Declaration{
			Name:         "controllers_file",
			Description:  "YAML file with the controllers configuration.",
			DefaultValue: "kortex_controllers.yaml",
		},
		launchspec.Declaration{
			Name:         "robot_controller",
			Description:  "Robot controller to start.",
			DefaultValue: "joint_trajectory_controller",
		},
		launchspec.Declaration{
			Name:         "robot_hand_controller",
			Description:  "Robot hand controller to start.",
			DefaultValue: "hand_controller",
		},
		launchspec.Declaration{
			Name:         "launch_viz",
			Description:  "Start the visualization UI alongside this target.",
			DefaultValue: "false",
			Type:         launchspec.TypeBool,
		},
	)
)
