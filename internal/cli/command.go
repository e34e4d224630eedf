package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// setupFlags configures flags on a Cobra command and binds them to a Config.
func setupFlags(cmd *cobra.Command, config *Config) {
	var noColor bool
	var forceColor bool

	// Mode flags
	cmd.Flags().BoolVar(&config.List,
		"list", false, "List classifier decisions for candidate paths without parsing or linting")
	cmd.Flags().BoolVar(&config.DryRun,
		"dry-run", false, "Reserved for an external make-invoking wrapper; this tool does not implement it")

	// Input flags
	cmd.PersistentFlags().StringVarP(&config.Root,
		"root", "r", ".", "Root directory to scan for candidate files when no paths are given")
	cmd.PersistentFlags().StringVar(&config.ConfigFile,
		"config", "", "YAML config file providing the same fields as flags (flags take precedence)")

	// Output/formatting flags
	cmd.Flags().BoolVar(&config.JSON,
		"json", false, "Emit a JSON array of per-file records (files without findings omitted) instead of the grouped text report")
	cmd.Flags().BoolVar(&config.Debug,
		"debug", false, "Dump classifier decisions to stderr")
	cmd.PersistentFlags().BoolVar(&forceColor,
		"color", false, "Force colored text output")
	cmd.PersistentFlags().BoolVar(&noColor,
		"no-color", false, "Disable colored text output")

	// Misc flags
	cmd.PersistentFlags().BoolVarP(&config.Verbose,
		"verbose", "v", false, "Enable progress output on stderr")
}

// processFlagsAfterParse resolves flags that need special handling after
// Cobra parsing: the mutually-exclusive color flags, and an optional
// config file merged in for anything not set directly on the command line.
func processFlagsAfterParse(cmd *cobra.Command, config *Config) error {
	noColor := cmd.Flags().Lookup("no-color").Changed
	forceColor := cmd.Flags().Lookup("color").Changed

	if noColor && forceColor {
		return fmt.Errorf("cannot use both --color and --no-color")
	}
	switch {
	case forceColor:
		config.ColorMode = ColorAlways
	case noColor:
		config.ColorMode = ColorNever
	default:
		config.ColorMode = ColorAuto
	}

	if config.ConfigFile != "" {
		fc, err := loadFileConfig(config.ConfigFile)
		if err != nil {
			return err
		}
		changed := func(flag string) bool {
			f := cmd.Flags().Lookup(flag)
			return f != nil && f.Changed
		}
		if err := applyFileConfig(changed, fc, config); err != nil {
			return err
		}
	}

	return nil
}
