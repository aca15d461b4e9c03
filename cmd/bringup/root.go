// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"bringup-cli/internal/config"
	"bringup-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// permissive accepts override keys that match no declared parameter
	permissive bool

	// loadedCfg is the configuration resolved during initialization. It is
	// never nil after initRootConfig runs; load failures fall back to the
	// compiled-in defaults.
	loadedCfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "bringup",
		Short: "Compose and launch multi-subsystem robot arm stacks",
		Long: TitleStyle.Render("bringup") + SubtitleStyle.Render(" - Compose and launch multi-subsystem robot arm stacks") + `

bringup composes runnable launches for a robot arm from declared,
defaultable parameters. A common parameter table (robot identity, network
address, joint-name prefix, gripper, fake-hardware flags) is shared by the
motion-planning and real-time control targets; each target resolves its own
binding from caller overrides, forced per-target values, and declared
defaults, then starts through the configured invoker.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Check the declared parameters: bringup params
  2. Launch both stacks: bringup up robot_type=gen3 robot_ip=192.168.1.10
  3. Adjust defaults per lab with a preset: bringup up --preset lab-arm.toml

` + SubtitleStyle.Render("Examples:") + `
  bringup params                          List every declared parameter
  bringup up robot_type=gen3 robot_ip=10.0.0.2
  bringup up --robot_type gen3 --robot_ip 10.0.0.2 --use_fake_hardware true
  bringup up --preset lab-arm.toml --dry-run
  bringup config show                     Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/bringup/config.cue)")
	rootCmd.PersistentFlags().BoolVar(&permissive, "permissive", false, "accept override keys that match no declared parameter")

	// Add subcommands
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors; defaults still apply.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	loadedCfg = cfg

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}

	// Apply permissive mode from config if not set via flag
	if !permissive {
		permissive = !cfg.StrictOverrides
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
