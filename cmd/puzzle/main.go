package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/experiment"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/search"
)

var log = logrus.New()

var (
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:           "puzzle",
	Short:         "Solve 8-puzzle and 15-puzzle instances with informed search",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFile, "log-file", "", "also write logs to a rotating file",
	)
}

func setupLogging() error {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}

	var hook logrus.Hook
	if logFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
	}

	for _, l := range []*logrus.Logger{
		log, puzzle.Log, search.Log, experiment.Log,
	} {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		if hook != nil {
			l.AddHook(hook)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
