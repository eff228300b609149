package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "schematic",
	Short: "Schematic - engine schematic part number and gear ratio analyzer",
	Long: `Schematic reads engine schematics (grids of digits, '.' and symbols) and reports
the sum of part numbers (numbers touching a symbol) and the sum of gear ratios
('*' symbols touching exactly two numbers).

Results are stored in SQLite or PostgreSQL and can be reported, merged and
served over a streaming NDJSON protocol. The run command dispatches the
daily puzzle solvers.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes text logs to w: debug with --verbose, errors only with --quiet.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// slogLogger adapts a slog.Logger to analyzer.DebugLogger.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Log(format string, args ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, args...))
}
