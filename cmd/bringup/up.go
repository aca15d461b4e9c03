// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"bringup-cli/internal/bringup"
	"bringup-cli/internal/compose"
	"bringup-cli/internal/config"
	"bringup-cli/internal/issue"
	"bringup-cli/internal/launcher"
	"bringup-cli/pkg/launchspec"
	"bringup-cli/pkg/platform"
	"bringup-cli/pkg/types"
)

var (
	// presetPath points to a TOML preset file layered under explicit overrides.
	presetPath string
	// invokerName overrides the configured default invoker for this run.
	invokerName string
	// dryRun composes bindings and prints them without invoking anything.
	dryRun bool

	// paramFlags holds the value of one registered per-parameter flag each.
	// Only flags the caller actually set become overrides.
	paramFlags = map[string]*string{}

	upCmd = &cobra.Command{
		Use:   "up [name=value ...]",
		Short: "Compose and launch the planning and control targets",
		Long: `Compose per-target argument bindings and launch every target.

Each target merges the common parameter table with its own, then resolves
every declared parameter: a value forced by the composition wins over a
caller override, which wins over the declared default. A required parameter
(robot_type, robot_ip) with no caller value fails the whole launch before
anything starts.

Overrides can be passed three ways, later sources winning:
  1. --preset <file>     a TOML preset ([params] table of scalars)
  2. --<name> <value>    one flag per declared parameter (see --help)
  3. name=value          positional pairs`,
		Args: cobra.ArbitraryArgs,
	}
)

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (upCmd -> runUp -> gatherOverrides -> upCmd).
	upCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runUp(cmd.Context(), args)
	}
	upCmd.Flags().StringVar(&presetPath, "preset", "", "TOML preset file with parameter overrides")
	upCmd.Flags().StringVar(&invokerName, "invoker", "", "invoker to launch with: exec, virtual, or container (default from config)")
	upCmd.Flags().BoolVar(&dryRun, "dry-run", false, "compose and print bindings without launching")

	// One flag per declared parameter so --help documents the full surface.
	for _, d := range bringup.Declarations() {
		usage := d.Description
		if d.Required {
			usage += " (required)"
		}
		paramFlags[d.Name] = upCmd.Flags().String(d.Name, d.DefaultValue, usage)
	}
}

// runUp composes every target and launches it through the selected invoker.
func runUp(ctx context.Context, args []string) error {
	overrides, err := gatherOverrides(args)
	if err != nil {
		return err
	}

	assembler := compose.NewAssembler(nil, compose.Options{Permissive: permissive})
	targets := bringup.Targets()

	if dryRun {
		bindings, err := assembler.Assemble(targets, overrides)
		if err != nil {
			return composeError(err)
		}
		printBindings(targets, bindings)
		return nil
	}

	invoker, err := selectInvoker(loadedCfg)
	if err != nil {
		return err
	}
	if invoker.Name() == "container" && platform.IsInSandbox() {
		log.Warn("running inside an application sandbox; the container engine may not be reachable",
			"sandbox", platform.DetectSandbox())
	}
	if !invoker.Available() {
		return issue.NewErrorContext().
			WithOperation("launch targets").
			WithResource(invoker.Name()).
			WithSuggestion("Install the required runtime for this invoker").
			WithSuggestion("Select a different invoker with --invoker or 'bringup config set default_invoker <mode>'").
			Wrap(fmt.Errorf("invoker %q: %w", invoker.Name(), launcher.ErrInvokerUnavailable)).
			BuildError()
	}

	assembler = compose.NewAssembler(invoker, compose.Options{Permissive: permissive})
	handles, err := assembler.Launch(ctx, targets, overrides)
	if err != nil {
		return composeError(err)
	}

	var exitCode types.ExitCode
	for _, handle := range handles {
		result := handle.Wait()
		if result.Error != nil {
			log.Error("target failed", "target", handle.Target(), "error", result.Error)
		}
		if !result.ExitCode.IsSuccess() && exitCode.IsSuccess() {
			exitCode = result.ExitCode
		}
	}
	if !exitCode.IsSuccess() {
		return &ExitError{Code: exitCode}
	}
	return nil
}

// gatherOverrides layers the three override sources: preset under flags
// under positional pairs.
func gatherOverrides(args []string) (launchspec.OverrideMap, error) {
	overrides := launchspec.OverrideMap{}

	if presetPath != "" {
		preset, err := bringup.LoadPreset(presetPath)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load preset").
				WithResource(presetPath).
				WithSuggestion("Check that the file exists and contains a [params] table").
				WithSuggestion("Preset values must be scalars (string, bool, int, float)").
				Wrap(err).
				BuildError()
		}
		overrides = overrides.Merge(preset)
	}

	flagOverrides := launchspec.OverrideMap{}
	for name, value := range paramFlags {
		if upCmd.Flags().Changed(name) {
			flagOverrides[name] = *value
		}
	}
	overrides = overrides.Merge(flagOverrides)

	positional, err := launchspec.ParseOverrides(args)
	if err != nil {
		return nil, err
	}
	return overrides.Merge(positional), nil
}

// selectInvoker builds the invoker named by --invoker, falling back to the
// configured default.
func selectInvoker(cfg *config.Config) (launcher.Invoker, error) {
	mode := config.InvokerMode(invokerName)
	if invokerName == "" {
		mode = cfg.DefaultInvoker
	}
	switch mode {
	case config.InvokerExec:
		return launcher.NewExecInvoker(), nil
	case config.InvokerVirtual:
		return launcher.NewVirtualInvoker(), nil
	case config.InvokerContainer:
		return launcher.NewContainerInvoker(launcher.ContainerEngine(cfg.ContainerEngine))
	default:
		return nil, issue.NewErrorContext().
			WithOperation("select invoker").
			WithResource(string(mode)).
			WithSuggestion("Use 'exec', 'virtual', or 'container'").
			Wrap(&config.InvalidInvokerModeError{Value: mode}).
			BuildError()
	}
}

// composeError wraps a composition failure with launch-surface guidance.
func composeError(err error) error {
	return issue.NewErrorContext().
		WithOperation("compose targets").
		WithSuggestion("Run 'bringup params' to see every declared parameter").
		WithSuggestion("Required parameters (robot_type, robot_ip) must be supplied by flag, pair, or preset").
		Wrap(err).
		BuildError()
}

// printBindings renders the dry-run composition result per target.
func printBindings(targets []compose.TargetSpec, bindings map[string]*launchspec.Binding) {
	for _, target := range targets {
		fmt.Println(TitleStyle.Render(target.Name))
		binding := bindings[target.Name]
		for _, arg := range launcher.ParamArgs(binding) {
			fmt.Printf("  %s\n", ParamStyle.Render(arg))
		}
		fmt.Println()
	}
}
