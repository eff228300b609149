package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/schematic/pkg/registry"
	"github.com/spf13/cobra"
)

var daysFormat string

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List registered days",
	Long:  "Display every registered day with its input file and part labels",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

func init() {
	daysCmd.Flags().StringVar(&registryPath, "registry", "", "Path to a custom day table (YAML)")
	daysCmd.Flags().StringVar(&daysFormat, "format", "table", "Output format: table, json")
}

func runDays(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	switch daysFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(reg.Solutions())
	case "table":
		return outputDaysTable(cmd, reg)
	default:
		return fmt.Errorf("unknown output format: %s", daysFormat)
	}
}

func outputDaysTable(cmd *cobra.Command, reg *registry.Registry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Day\tTitle\tInput\tPart 1\tPart 2\n")
	fmt.Fprintf(w, "---\t-----\t-----\t------\t------\n")

	for _, s := range reg.Solutions() {
		fmt.Fprintf(w, "%02d\t%s\t%s\t%s\t%s\n", s.Day, s.Title, s.Input, partLabel(s.One), partLabel(s.Two))
	}
	return nil
}

func partLabel(p *registry.Part) string {
	if p == nil {
		return "-"
	}
	return p.Label
}
