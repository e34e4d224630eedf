package classify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// BuildSystem names the tool that generated or owns a candidate makefile,
// when that can be inferred from its content.
type BuildSystem int

const (
	BuildSystemNone BuildSystem = iota
	BuildSystemMake
	BuildSystemCMake
	BuildSystemAutoconf
	BuildSystemPerl
	BuildSystemOther
)

// String returns the enum's lowercase name, matching the spec's
// enum{make,cmake,autoconf,perl,...,none} literally.
func (b BuildSystem) String() string {
	switch b {
	case BuildSystemMake:
		return "make"
	case BuildSystemCMake:
		return "cmake"
	case BuildSystemAutoconf:
		return "autoconf"
	case BuildSystemPerl:
		return "perl"
	case BuildSystemOther:
		return "other"
	default:
		return "none"
	}
}

// MarshalJSON renders BuildSystem as its String() name rather than its
// underlying int, so JSON diagnostic output matches the spec's enum names.
func (b BuildSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// Decision is the classifier's verdict for one path.
type Decision struct {
	Path string `json:"path"`

	// IsMakefile reports whether the path is recognized as any flavor of
	// makefile (portable or implementation-specific).
	IsMakefile bool `json:"is_makefile"`

	BuildSystem        BuildSystem `json:"build_system"`
	IsMachineGenerated bool        `json:"is_machine_generated"`

	// ShouldParse reports whether the parser should even be invoked.
	ShouldParse bool `json:"should_parse"`

	// ShouldLint reports whether warning inspections should run on a
	// successful parse. False for machine-generated files even though
	// they may still be parsed.
	ShouldLint bool `json:"should_lint"`

	// IsImplementationSpecific marks GNUmakefile/BSDmakefile/sys.mk-style
	// names: parsed, but "portable only" policies are suppressed.
	IsImplementationSpecific bool `json:"is_implementation_specific"`

	// IsIncludeFile marks *.include.mk-style names: exempt from
	// STRICT_POSIX, NO_RULES, and RULE_ALL.
	IsIncludeFile bool `json:"is_include_file"`
}

// sniffLimit bounds how much of a candidate file is read for
// machine-generated signature detection.
const sniffLimit = 64 * 1024

var rejectedAncestors = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// signature associates a case-sensitive content substring, expected within
// the first sniffLimit bytes, with the build system it implies.
type signature struct {
	text   string
	system BuildSystem
}

var generatedSignatures = []signature{
	{"Generated by CMake", BuildSystemCMake},
	{"CMake generated", BuildSystemCMake},
	{"Makefile.in generated by automake", BuildSystemAutoconf},
	{"generated by automake", BuildSystemAutoconf},
	{"generated automatically by configure", BuildSystemAutoconf},
	{"This Makefile.in was generated", BuildSystemAutoconf},
	{"Generated automatically from Makefile.PL", BuildSystemPerl},
	{"ExtUtils::MakeMaker", BuildSystemPerl},
	{"DO NOT EDIT THIS FILE", BuildSystemOther},
	{"DO NOT EDIT. Generated by", BuildSystemOther},
}

// Classify inspects path (and, when it looks like a candidate makefile,
// up to sniffLimit bytes of its content) and returns the linter's
// decision for it. The rules are applied in the order the specification
// lists them: symlinks and reserved ancestor directories are rejected
// before the filename is even examined.
func Classify(path string) (Decision, error) {
	d := Decision{Path: path}

	info, err := os.Lstat(path)
	if err != nil {
		return d, err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return d, nil
	}
	if hasRejectedAncestor(path) {
		return d, nil
	}
	if info.IsDir() {
		return d, nil
	}

	classifyFilename(&d, filepath.Base(path))
	if !d.IsMakefile {
		return d, nil
	}

	if sniffMachineGenerated(path, &d) {
		d.IsMachineGenerated = true
		d.ShouldLint = false
	}

	return d, nil
}

func hasRejectedAncestor(path string) bool {
	dir := filepath.Dir(path)
	for {
		base := filepath.Base(dir)
		if rejectedAncestors[base] {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

func classifyFilename(d *Decision, base string) {
	switch {
	case base == "makefile":
		d.IsMakefile, d.ShouldParse, d.ShouldLint = true, true, true
		d.BuildSystem = BuildSystemMake
	case base == "Makefile":
		d.IsMakefile, d.ShouldParse, d.ShouldLint = true, true, true
		d.BuildSystem = BuildSystemMake
	case isImplementationSpecificName(base):
		d.IsMakefile, d.ShouldParse, d.ShouldLint = true, true, true
		d.BuildSystem = BuildSystemMake
		d.IsImplementationSpecific = true
		d.IsIncludeFile = isIncludeFileName(base)
	case strings.HasSuffix(base, ".mk"):
		d.IsMakefile, d.ShouldParse, d.ShouldLint = true, true, true
		d.BuildSystem = BuildSystemMake
		d.IsIncludeFile = isIncludeFileName(base)
	default:
		// Not a makefile; every field stays at its zero value.
	}
}

func isImplementationSpecificName(base string) bool {
	switch {
	case base == "GNUmakefile", base == "BSDmakefile", base == "sys.mk":
		return true
	case strings.HasSuffix(base, ".GNUmakefile"), strings.HasSuffix(base, ".BSDmakefile"):
		return true
	}
	return false
}

func isIncludeFileName(base string) bool {
	return strings.Contains(base, ".include.mk") ||
		strings.Contains(base, ".include.GNUmakefile") ||
		strings.Contains(base, ".include.BSDmakefile")
}

// sniffMachineGenerated reads up to sniffLimit bytes of path and reports
// whether any known generated-file signature is present. It sets
// d.BuildSystem to the signature's implied system when one matches. Read
// errors are treated as "no signature found" rather than surfaced — the
// file will still be loaded properly (or fail properly) by the byte
// reader moments later.
func sniffMachineGenerated(path string, d *Decision) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLimit)
	n, _ := f.Read(buf)
	content := string(buf[:n])

	for _, sig := range generatedSignatures {
		if strings.Contains(content, sig.text) {
			d.BuildSystem = sig.system
			return true
		}
	}
	return false
}
