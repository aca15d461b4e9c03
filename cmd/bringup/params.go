// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bringup-cli/internal/bringup"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the declared launch parameters",
	Long: `List every parameter declared across the planning and control targets.

Parameters shared by both targets appear once. Required parameters have no
default and must be supplied when launching.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listParams()
	},
}

func listParams() error {
	fmt.Println(TitleStyle.Render("Declared Parameters"))
	fmt.Println()

	for _, d := range bringup.Declarations() {
		name := ParamStyle.Render(d.Name)
		switch {
		case d.Required:
			fmt.Printf("  %s %s\n", name, WarningStyle.Render("(required)"))
		case d.DefaultValue == "":
			fmt.Printf("  %s %s\n", name, SubtitleStyle.Render(`(default "")`))
		default:
			fmt.Printf("  %s %s\n", name, SubtitleStyle.Render(fmt.Sprintf("(default %q)", d.DefaultValue)))
		}
		fmt.Printf("      %s\n", VerboseStyle.Render(d.Description))
	}
	return nil
}
