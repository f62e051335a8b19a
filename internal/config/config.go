package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/scaffold-next/scaffold-next/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyLogFile = "log_file"
	KeyColor   = "color"
	KeyVerbose = "verbose"
)

// Dir returns the path to the config directory (~/.scaffold-next/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.scaffold-next/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogFile, branding.LogFile())
	viper.SetDefault(KeyColor, true)
	viper.SetDefault(KeyVerbose, false)

	// Ignore error if config file doesn't exist.
	_ = viper.ReadInConfig()
}

// LogFile returns the operation log path. Relative paths are resolved
// against the process working directory, never the scaffold target.
func LogFile() string {
	if v := viper.GetString(KeyLogFile); v != "" {
		return v
	}
	return branding.LogFile()
}

// Color reports whether console output should be colorized.
func Color() bool {
	return viper.GetBool(KeyColor)
}

// Verbose reports whether debug diagnostics are enabled.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}
