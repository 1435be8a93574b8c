package renamer

import (
	"io"
	"time"

	"github.com/SkyMack/picrename/internal/clibase"
	"github.com/SkyMack/picrename/internal/imagefile"
	"github.com/SkyMack/picrename/internal/status"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ReporterFactory builds the status reporter shown on the console
type ReporterFactory func(w io.Writer) (status.Reporter, error)

// SpinnerReporter is the ReporterFactory used for interactive runs
func SpinnerReporter(w io.Writer) (status.Reporter, error) {
	spinner, err := status.StartSpinner(w, "starting")
	if err != nil {
		return nil, err
	}
	return spinner, nil
}

// AddRunE adds the rename flags to rootCmd and makes the rename run its action. stdin is read
// for the final key press unless --no-pause is given.
func AddRunE(rootCmd *cobra.Command, newReporter ReporterFactory, stdin io.Reader) {
	AddFlags(rootCmd.Flags())

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		settings, err := clibase.LogSettingsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		logger, logFile, err := clibase.NewFileLogger(settings, rootCmd.Name(), time.Now())
		if err != nil {
			return err
		}
		defer logFile.Close()

		started := time.Now()
		logger.Info("program started")

		conf, err := ConfigFromFlags(cmd.Flags())
		if err != nil {
			logger.WithField("error", err).Error(clibase.ErrorFlagCannotRetrieve.Error())
			return err
		}
		if _, err := imagefile.ParseFormat(conf.Postfix); err != nil {
			// not fatal: every image fails to convert and is skipped
			logger.WithField("error", err).Warn("unsupported target format")
		}
		destDir, err := PrepareDestDir(conf.DestDir)
		if err != nil {
			logger.WithFields(log.Fields{
				"dst.dir": conf.DestDir,
				"error":   err,
			}).Error("unable to create destination directory")
			return err
		}
		conf.DestDir = destDir

		out := cmd.OutOrStdout()
		reporter, err := newReporter(out)
		if err != nil {
			logger.WithField("error", err).Warn("status reporter unavailable")
			reporter = status.Nop{}
		}

		// console lines go through the spinner so they do not collide with its frames
		console := out
		if w, ok := reporter.(io.Writer); ok {
			console = w
		}

		r := New(conf, logger, reporter, console)
		r.SetStarted(started)
		r.Run()

		if conf.Pause {
			return status.WaitForKey(stdin, out)
		}
		return nil
	}
}
