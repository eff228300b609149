package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/enum"
	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/praetorian-inc/schematic/pkg/types"
	"github.com/spf13/cobra"
)

var (
	scanOutputPath    string
	scanOutputFormat  string
	scanColor         string
	scanExtensions    []string
	scanMaxFileSize   int64
	scanIncludeHidden bool
	scanIncremental   bool
	scanGears         bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <target>",
	Short: "Analyze schematic files",
	Long: `Analyze a schematic file, or every schematic file under a directory,
and store the part numbers and gear ratios found.

--output selects the store: a SQLite file path, ":memory:", or a
postgres:// DSN.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanOutputPath, "output", "schematic.db", "Output store (SQLite path, :memory:, or postgres:// DSN)")
	scanCmd.Flags().StringVar(&scanOutputFormat, "format", "human", "Output format: human, json, sarif")
	scanCmd.Flags().StringVar(&scanColor, "color", "auto", "Color output: auto, always, never")
	scanCmd.Flags().StringSliceVar(&scanExtensions, "ext", nil, "Only analyze files with these extensions (e.g. txt,in)")
	scanCmd.Flags().Int64Var(&scanMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to analyze (bytes)")
	scanCmd.Flags().BoolVar(&scanIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	scanCmd.Flags().BoolVar(&scanIncremental, "incremental", false, "Skip schematics already in the store")
	scanCmd.Flags().BoolVar(&scanGears, "gears", false, "List every contributing gear in human output")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]
	logger := newLogger(cmd.ErrOrStderr())

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}

	s, err := store.New(store.Config{Path: scanOutputPath})
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	core, err := analyzer.NewCore(analyzer.Config{Store: s, Logger: slogLogger{logger}})
	if err != nil {
		s.Close()
		return fmt.Errorf("creating analyzer: %w", err)
	}
	defer core.Close()

	enumerator := enum.NewFilesystemEnumerator(enum.Config{
		Root:          target,
		Extensions:    scanExtensions,
		IncludeHidden: scanIncludeHidden,
		MaxFileSize:   scanMaxFileSize,
	})

	var (
		mu        sync.Mutex
		summaries []*types.Summary
		failures  []error
		skipped   int
	)

	err = enumerator.Enumerate(context.Background(), func(content []byte, id types.SchematicID, prov types.Provenance) error {
		if scanIncremental {
			seen, err := core.Seen(id)
			if err != nil {
				return fmt.Errorf("checking schematic: %w", err)
			}
			if seen {
				logger.Debug("skipping already analyzed schematic", "path", prov.Path(), "id", id.Short())
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
		}

		sum, err := core.AnalyzeWithProvenance(content, prov)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			// Structural faults are per-file; storage faults stop the scan.
			var serr *types.Error
			if !errors.As(err, &serr) {
				return err
			}
			logger.Warn("skipping schematic", "path", prov.Path(), "error", err)
			failures = append(failures, err)
			return nil
		}
		summaries = append(summaries, sum)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	analyzer.SortBySource(summaries)

	// Status goes to stderr for json/sarif so stdout stays machine readable
	status := cmd.OutOrStdout()
	if scanOutputFormat == "json" || scanOutputFormat == "sarif" {
		status = cmd.ErrOrStderr()
	}
	if !quiet {
		line := fmt.Sprintf("Scan complete: %d schematics", len(summaries))
		if scanIncremental {
			line += fmt.Sprintf(" (%d skipped)", skipped)
		}
		if len(failures) > 0 {
			line += fmt.Sprintf(", %d failed", len(failures))
		}
		fmt.Fprintln(status, line)
		fmt.Fprintf(status, "Results stored in: %s\n", scanOutputPath)
	}

	if err := writeSummaries(cmd.OutOrStdout(), scanOutputFormat, summaries, newStyles(colorEnabled(scanColor)), scanGears); err != nil {
		return err
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d schematic(s) could not be analyzed: %w", len(failures), errors.Join(failures...))
	}
	return nil
}
