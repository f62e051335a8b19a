package cli

import (
	"fmt"
	"os"

	"github.com/scaffold-next/scaffold-next/internal/branding"
	"github.com/scaffold-next/scaffold-next/internal/config"
	"github.com/scaffold-next/scaffold-next/internal/display"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	previewFlag bool
	noReadme    bool
	noColor     bool
	verboseFlag bool
	logFileFlag string
)

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&previewFlag, "preview", "p", false, "Preview what will be created without making changes")
	f.BoolVar(&noReadme, "no-readme", false, "Skip creating README.md file")
	f.BoolVar(&noColor, "no-color", false, "Disable colored output")
	f.BoolVarP(&verboseFlag, "verbose", "v", false, "Print debug diagnostics to stderr")
	f.StringVar(&logFileFlag, "log-file", "", "Operation log file (default: ./scaffolder.log)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [path]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a standard Next.js App Router folder structure
(components, lib, hooks, types, styles, public assets, docs, tests) and a README
in the target directory. Existing folders are left as they are, so it is safe
to run again. Every operation is appended to scaffolder.log in the current directory.

Examples:
  scaffold-next                 # scaffold the current directory
  scaffold-next my-app          # scaffold ./my-app
  scaffold-next my-app --preview
  scaffold-next my-app --no-readme`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := viper.BindPFlag(config.KeyLogFile, cmd.Flags().Lookup("log-file")); err != nil {
			return fmt.Errorf("binding --log-file: %w", err)
		}
		if err := viper.BindPFlag(config.KeyVerbose, cmd.Flags().Lookup("verbose")); err != nil {
			return fmt.Errorf("binding --verbose: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) > 0 {
			target = args[0]
		}
		return runScaffold(cmd, target)
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed here because the root command silences Cobra's own output.
func Execute(version, commit, date string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		display.New(os.Stdout, os.Stderr, config.Color() && !noColor).Error(err)
		return err
	}
	return nil
}
