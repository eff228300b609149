package main

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/spf13/cobra"
)

var (
	reportStorePath string
	reportFormat    string
	reportColor     string
	reportGears     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report from stored results",
	Long:  "Read analyzed schematics from a store and print their part number and gear ratio sums",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportStorePath, "store", "schematic.db", "Store to read (SQLite path or postgres:// DSN)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "human", "Output format: human, json, sarif")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
	reportCmd.Flags().BoolVar(&reportGears, "gears", true, "List every contributing gear in human output")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportStorePath == store.MemoryPath {
		return fmt.Errorf("cannot report from in-memory store")
	}
	if !store.IsPostgresDSN(reportStorePath) {
		if _, err := os.Stat(reportStorePath); err != nil {
			return fmt.Errorf("store not found: %s", reportStorePath)
		}
	}

	s, err := store.New(store.Config{Path: reportStorePath})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	sums, err := analyzer.Load(s)
	if err != nil {
		return err
	}

	return writeSummaries(cmd.OutOrStdout(), reportFormat, sums, newStyles(colorEnabled(reportColor)), reportGears)
}
