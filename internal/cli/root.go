package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sdlcforge/makelint/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	modeGroupLabel   = "Mode"
	inputGroupLabel  = "Input"
	outputGroupLabel = "Output/formatting"
	miscGroupLabel   = "Misc"
)

// ErrWarningsFound is returned when every file parsed but at least one
// carried a warning. Distinguishes "lint found something" from
// ErrParseFailures at the main.go exit-code boundary.
var ErrWarningsFound = errors.New("lint warnings found")

// ErrParseFailures is returned when at least one candidate file failed to
// parse.
var ErrParseFailures = errors.New("parse failures found")

// ErrIOFailures is returned when at least one candidate file could not be
// classified or read (a failed Lstat, a non-UTF-8 or unreadable file).
// Other candidates are still inspected and reported; this only changes
// the process's exit code.
var ErrIOFailures = errors.New("I/O failures found")

func init() {
	cobra.AddTemplateFunc("flagGroups", flagGroupsFunc)
}

// NewRootCmd creates the root command for makelint.
func NewRootCmd() *cobra.Command {
	config := NewConfig()

	rootCmd := &cobra.Command{
		Use:     "makelint [path...]",
		Short:   "Check POSIX make portability in Makefiles",
		Version: version.Version,
		Long: `makelint classifies, parses, and lints Makefiles for POSIX make
portability. Given no paths, it walks --root (default ".") for candidate
files; given explicit paths, it inspects exactly those.

  --list        Print the classifier's decision for each candidate path
  --json        Emit diagnostics as JSON instead of grouped text
  --debug       Dump classifier decisions to stderr

Exit codes: 0 clean, 1 warnings found, 2 parse failures, unreadable
files, or a fatal error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := processFlagsAfterParse(cmd, config); err != nil {
				return err
			}
			if config.DryRun {
				return fmt.Errorf("--dry-run is reserved for an external make-invoking wrapper and is not implemented by this tool")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.UseColor = ResolveColorMode(config)

			reports, err := runDiagnostics(config, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if config.JSON {
				if err := writeJSON(out, reports, config.List); err != nil {
					return err
				}
			} else {
				writeText(out, reports, newColorScheme(config.UseColor), config.List)
			}

			if config.List {
				return nil
			}

			ioErrors, parseErrors, warnings := summarize(reports)
			if ioErrors > 0 {
				return ErrIOFailures
			}
			if parseErrors > 0 {
				return ErrParseFailures
			}
			if warnings > 0 {
				return ErrWarningsFound
			}
			return nil
		},
	}

	setupFlags(rootCmd, config)

	annotateFlag(rootCmd, "list", modeGroupLabel)
	annotateFlag(rootCmd, "dry-run", modeGroupLabel)

	annotateFlag(rootCmd, "root", inputGroupLabel)
	annotateFlag(rootCmd, "config", inputGroupLabel)

	annotateFlag(rootCmd, "json", outputGroupLabel)
	annotateFlag(rootCmd, "debug", outputGroupLabel)
	annotateFlag(rootCmd, "color", outputGroupLabel)
	annotateFlag(rootCmd, "no-color", outputGroupLabel)

	annotateFlag(rootCmd, "verbose", miscGroupLabel)

	rootCmd.SetUsageTemplate(usageTemplate)

	return rootCmd
}

func annotateFlag(cmd *cobra.Command, flagName, group string) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(flagName)
	}
	if flag != nil {
		if flag.Annotations == nil {
			flag.Annotations = make(map[string][]string)
		}
		flag.Annotations["group"] = []string{group}
	}
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

{{flagGroups .}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

func flagGroupsFunc(cmd *cobra.Command) string {
	groupOrder := []string{modeGroupLabel, inputGroupLabel, outputGroupLabel, miscGroupLabel}

	flagsByGroup := make(map[string][]string)
	seenFlags := make(map[string]bool)

	processFlags := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(flag *pflag.Flag) {
			if flag.Hidden || seenFlags[flag.Name] {
				return
			}
			seenFlags[flag.Name] = true

			group := miscGroupLabel
			if flag.Annotations != nil {
				if groups, ok := flag.Annotations["group"]; ok && len(groups) > 0 {
					group = groups[0]
				}
			}
			flagsByGroup[group] = append(flagsByGroup[group], formatFlagUsage(flag))
		})
	}
	processFlags(cmd.Flags())
	processFlags(cmd.PersistentFlags())

	var sb strings.Builder
	for _, group := range groupOrder {
		flags, ok := flagsByGroup[group]
		if !ok || len(flags) == 0 {
			continue
		}
		sb.WriteString(group)
		sb.WriteString(":\n")
		for _, flagUsage := range flags {
			sb.WriteString(flagUsage)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatFlagUsage(flag *pflag.Flag) string {
	var sb strings.Builder

	if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
		sb.WriteString("  -")
		sb.WriteString(flag.Shorthand)
		sb.WriteString(", ")
	} else {
		sb.WriteString("      ")
	}

	sb.WriteString("--")
	sb.WriteString(flag.Name)

	if flag.Value.Type() != "bool" {
		sb.WriteString(" ")
		sb.WriteString(flag.Value.Type())
	}

	currentLen := sb.Len()
	if padding := 28 - currentLen; padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	} else {
		sb.WriteString("   ")
	}

	sb.WriteString(flag.Usage)
	if shouldShowDefault(flag) {
		fmt.Fprintf(&sb, " (default %s)", flag.DefValue)
	}
	sb.WriteString("\n")
	return sb.String()
}

func shouldShowDefault(flag *pflag.Flag) bool {
	if flag.DefValue == "" || flag.DefValue == "[]" {
		return false
	}
	if flag.Value.Type() == "bool" && flag.DefValue == "false" {
		return false
	}
	return true
}

// Main is the entry point cmd/makelint's main() calls. It maps the
// command's outcome onto a process exit code: 0 clean, 1 warnings found,
// 2 parse failures, I/O failures, or any other error.
func Main() int {
	cmd := NewRootCmd()
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrWarningsFound):
		return 1
	case errors.Is(err, ErrParseFailures):
		return 2
	case errors.Is(err, ErrIOFailures):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
}
