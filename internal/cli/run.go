package cli

import (
	"fmt"
	"os"

	"github.com/sdlcforge/makelint/internal/classify"
	"github.com/sdlcforge/makelint/internal/diag"
	"github.com/sdlcforge/makelint/internal/lint"
	"github.com/sdlcforge/makelint/internal/parser"
	"github.com/sdlcforge/makelint/internal/source"
	"github.com/sdlcforge/makelint/internal/walk"
)

// FileReport is one path's outcome: at most one of IOError, ParseError, or
// Warnings is populated. IOError covers failures that keep the file from
// being classified or read at all (a failed Lstat, a non-UTF-8 or
// unreadable file) — those never abort the run, they are attached to this
// path's own report so every other candidate is still inspected.
type FileReport struct {
	Path       string            `json:"path"`
	Decision   classify.Decision `json:"decision"`
	IOError    string            `json:"io_error,omitempty"`
	ParseError *diag.ParseError  `json:"parse_error,omitempty"`
	Warnings   []lint.Warning    `json:"warnings,omitempty"`
}

// candidatePaths resolves the paths to inspect: explicit positional
// arguments if given, otherwise every file found walking config.Root.
func candidatePaths(config *Config, args []string) ([]string, error) {
	if len(args) > 0 {
		var paths []string
		for _, a := range args {
			resolved, err := classify.ResolvePath(a)
			if err != nil {
				return nil, err
			}
			paths = append(paths, resolved)
		}
		return paths, nil
	}

	root, err := classify.ResolvePath(config.Root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	return walk.Collect(root)
}

// runDiagnostics walks/classifies/parses/lints every candidate path and
// returns one report per path recognized as a makefile, plus one per path
// whose classification failed. A path rejected outright by
// classify.Classify (symlink, pruned ancestor, directory) is silently
// omitted from the report, through the same Decision.IsMakefile check
// that omits files that are not makefiles at all. A path whose classification or read fails
// with an I/O error gets its own report carrying that error; it never
// aborts the walk or discards reports already collected for other paths.
func runDiagnostics(config *Config, args []string) ([]FileReport, error) {
	paths, err := candidatePaths(config, args)
	if err != nil {
		return nil, err
	}

	var reports []FileReport
	for _, path := range paths {
		decision, err := classify.Classify(path)
		if err != nil {
			reports = append(reports, FileReport{Path: path, IOError: err.Error()})
			continue
		}
		if config.Debug {
			fmt.Fprintf(os.Stderr, "classify: %s -> %+v\n", path, decision)
		}
		if !decision.IsMakefile {
			continue
		}
		if config.List {
			reports = append(reports, FileReport{Path: path, Decision: decision})
			continue
		}
		if !decision.ShouldParse {
			reports = append(reports, FileReport{Path: path, Decision: decision})
			continue
		}

		report, err := inspectFile(path, decision)
		if err != nil {
			reports = append(reports, FileReport{Path: path, Decision: decision, IOError: err.Error()})
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func inspectFile(path string, decision classify.Decision) (FileReport, error) {
	src, err := source.Load(path)
	if err != nil {
		return FileReport{}, err
	}

	f, perr := parser.Parse(path, src.Bytes)
	if perr != nil {
		return FileReport{Path: path, Decision: decision, ParseError: perr}, nil
	}

	report := FileReport{Path: path, Decision: decision}
	if decision.ShouldLint {
		report.Warnings = lint.Lint(f, decision)
	}
	return report, nil
}

// summarize counts I/O errors, parse errors, and warnings across all
// reports.
func summarize(reports []FileReport) (ioErrors, parseErrors, warnings int) {
	for _, r := range reports {
		if r.IOError != "" {
			ioErrors++
		}
		if r.ParseError != nil {
			parseErrors++
		}
		warnings += len(r.Warnings)
	}
	return ioErrors, parseErrors, warnings
}
