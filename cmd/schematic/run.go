package main

import (
	"context"
	"fmt"
	"os"

	"github.com/praetorian-inc/schematic/pkg/command"
	"github.com/praetorian-inc/schematic/pkg/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runInputDir string

var runCmd = &cobra.Command{
	Use:   "run [command]",
	Short: "Run daily puzzle solutions",
	Long: `Run the registered solutions for one day, a range of days, or all days.

Commands:
  a      all days
  N      a single day (eg 3)
  N-M    a range of days (eg 1-4)
  q      quit

With no command, an interactive prompt reads commands from stdin.
Each day reads <input-dir>/<input>.txt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInputDir, "input-dir", "input", "Directory holding the day input files")
	runCmd.Flags().StringVar(&registryPath, "registry", "", "Path to a custom day table (YAML)")
}

func runRun(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	r := &runner.Runner{
		Registry: reg,
		InputDir: runInputDir,
		Out:      cmd.OutOrStdout(),
	}
	if days := reg.Days(); len(days) > 0 {
		r.LastDay = days[len(days)-1]
	}

	if len(args) == 0 {
		r.Clear = term.IsTerminal(int(os.Stdout.Fd()))
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return r.Loop(ctx, cmd.InOrStdin())
	}

	c, err := command.Parse(args[0])
	if err != nil {
		return err
	}

	switch c.Kind {
	case command.Quit:
		return nil
	case command.Day:
		return r.RunDay(c.Lo)
	case command.All:
		c.Lo, c.Hi = 1, r.LastDay
	}
	if failed := r.RunRange(c.Lo, c.Hi); failed > 0 {
		return fmt.Errorf("%d day(s) failed", failed)
	}
	return nil
}
