package cli

import (
	"io"

	"github.com/scaffold-next/scaffold-next/internal/config"
	"github.com/scaffold-next/scaffold-next/internal/display"
	"github.com/scaffold-next/scaffold-next/internal/oplog"
	"github.com/scaffold-next/scaffold-next/internal/scaffold"
	"github.com/scaffold-next/scaffold-next/internal/structure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runScaffold(cmd *cobra.Command, target string) error {
	diag := newDiagLogger(cmd.ErrOrStderr(), config.Verbose())

	spec, err := structure.Default()
	if err != nil {
		return err
	}
	folders := spec.Folders()

	out := display.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), config.Color() && !noColor)
	opts := scaffold.Options{Preview: previewFlag, Readme: !noReadme}
	exec := scaffold.New(scaffold.Config{
		Logger:   oplog.NewFile(config.LogFile(), cmd.ErrOrStderr()),
		Progress: out.Progress,
	})

	diag.WithFields(logrus.Fields{
		"target":    target,
		"preview":   opts.Preview,
		"readme":    opts.Readme,
		"log_file":  config.LogFile(),
		"folders":   len(folders),
		"structure": spec.Version.String(),
	}).Debug("starting scaffold")

	out.Welcome()

	plan, err := exec.Plan(target, opts, folders)
	if err != nil {
		return err
	}
	out.Plan(plan)
	if opts.Preview {
		return nil
	}

	result, err := exec.Execute(target, opts, folders)
	if err != nil {
		return err
	}
	out.Summary(result)

	diag.WithFields(logrus.Fields{
		"root":            result.Root,
		"folders_created": result.Stats.FoldersCreated,
		"files_created":   result.Stats.FilesCreated,
		"errors":          result.Stats.Errors,
	}).Debug("scaffold finished")
	return nil
}

// newDiagLogger returns a stderr logger that only speaks under --verbose.
func newDiagLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
