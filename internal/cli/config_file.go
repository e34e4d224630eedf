package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the subset of Config that a checked-in YAML file can
// populate. Fields use pointers so "absent from the file" is distinguishable
// from "explicitly false" — only flags the user did not pass on the command
// line are filled in from here.
type fileConfig struct {
	Root    *string `yaml:"root"`
	JSON    *bool   `yaml:"json"`
	List    *bool   `yaml:"list"`
	Debug   *bool   `yaml:"debug"`
	Verbose *bool   `yaml:"verbose"`
	Color   *string `yaml:"color"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// applyFileConfig merges fc into config, skipping any field whose
// corresponding flag was explicitly set on the command line.
func applyFileConfig(changed func(flag string) bool, fc *fileConfig, config *Config) error {
	if fc.Root != nil && !changed("root") {
		config.Root = *fc.Root
	}
	if fc.JSON != nil && !changed("json") {
		config.JSON = *fc.JSON
	}
	if fc.List != nil && !changed("list") {
		config.List = *fc.List
	}
	if fc.Debug != nil && !changed("debug") {
		config.Debug = *fc.Debug
	}
	if fc.Verbose != nil && !changed("verbose") {
		config.Verbose = *fc.Verbose
	}
	if fc.Color != nil && !changed("color") && !changed("no-color") {
		switch *fc.Color {
		case "always":
			config.ColorMode = ColorAlways
		case "never":
			config.ColorMode = ColorNever
		case "auto", "":
			config.ColorMode = ColorAuto
		default:
			return fmt.Errorf("config file: unrecognized color value %q", *fc.Color)
		}
	}
	return nil
}
