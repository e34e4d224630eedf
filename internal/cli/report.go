package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	resetCode = "\033[0m"
	boldRed   = "\033[1;31m"
	yellowSGR = "\033[0;33m"
	boldWhite = "\033[1;37m"
)

// colorScheme holds the ANSI codes used to render a text report. All
// fields are empty strings when color is disabled, so callers can
// concatenate unconditionally.
type colorScheme struct {
	Path    string
	Error   string
	Warning string
	Reset   string
}

func newColorScheme(useColor bool) colorScheme {
	if !useColor {
		return colorScheme{}
	}
	return colorScheme{
		Path:    boldWhite,
		Error:   boldRed,
		Warning: yellowSGR,
		Reset:   resetCode,
	}
}

// writeJSON emits one JSON array of every report with a diagnostic
// (parse error or warnings); reports that are clean and not in list mode
// are omitted the same way the text report omits them.
func writeJSON(w io.Writer, reports []FileReport, listMode bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	var out []FileReport
	for _, r := range reports {
		if listMode || r.IOError != "" || r.ParseError != nil || len(r.Warnings) > 0 {
			out = append(out, r)
		}
	}
	return enc.Encode(out)
}

// writeText renders reports grouped by file, in the style of the
// teacher's lint command: a path header, then one line per finding.
func writeText(w io.Writer, reports []FileReport, cs colorScheme, listMode bool) {
	if listMode {
		for _, r := range reports {
			fmt.Fprintf(w, "%s%s%s\t%s\n", cs.Path, r.Path, cs.Reset, r.Decision.BuildSystem)
		}
		return
	}

	for _, r := range reports {
		if r.IOError == "" && r.ParseError == nil && len(r.Warnings) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s%s%s\n", cs.Path, r.Path, cs.Reset)
		if r.IOError != "" {
			fmt.Fprintf(w, "  %s%s%s\n", cs.Error, r.IOError, cs.Reset)
		}
		if r.ParseError != nil {
			pe := r.ParseError
			fmt.Fprintf(w, "  %s%d:%d: found %s, expected one of %v%s\n",
				cs.Error, pe.Line, pe.Column, pe.Found, pe.Expected, cs.Reset)
		}
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "  %s%d:%d: [%s] %s%s\n",
				cs.Warning, warning.Line, warning.Column, warning.Policy, warning.Message, cs.Reset)
			if warning.MitigationHint != "" {
				fmt.Fprintf(w, "      %s\n", warning.MitigationHint)
			}
		}
		fmt.Fprintln(w)
	}

	ioErrors, parseErrors, warnings := summarize(reports)
	switch {
	case ioErrors > 0:
		fmt.Fprintf(w, "%d file(s) could not be read, %d failed to parse, %d warning(s)\n", ioErrors, parseErrors, warnings)
	case parseErrors > 0:
		fmt.Fprintf(w, "%d file(s) failed to parse, %d warning(s)\n", parseErrors, warnings)
	case warnings > 0:
		fmt.Fprintf(w, "%d warning(s)\n", warnings)
	default:
		fmt.Fprintln(w, "no issues found")
	}
}
