// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed, so renaming the tool or its
// environment prefix only needs an edit to that file and a rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	LogFile     string `yaml:"log_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "scaffold-next",
			DisplayName: "Next.js Project Scaffolder",
			Description: "Professional folder structure generator for Next.js projects",
			HomeDir:     ".scaffold-next",
			EnvPrefix:   "SCAFFOLD_NEXT",
			LogFile:     "scaffolder.log",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "scaffold-next").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".scaffold-next").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SCAFFOLD_NEXT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LogFile returns the default operation log file name.
func LogFile() string { load(); return defaults.LogFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_file") → "SCAFFOLD_NEXT_LOG_FILE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
