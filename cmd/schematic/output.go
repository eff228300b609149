package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/sarif"
	"github.com/praetorian-inc/schematic/pkg/types"
	"golang.org/x/term"
)

// maxGearLines caps the gears listed per schematic in human output.
const maxGearLines = 10

// styles holds color formatters for human output
type styles struct {
	heading *color.Color
	id      *color.Color
	value   *color.Color
	total   *color.Color
	meta    *color.Color
}

// newStyles creates color formatters; enabled=false disables them all.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		id:      color.New(color.FgHiGreen),
		value:   color.New(color.FgYellow),
		total:   color.New(color.Bold, color.FgHiWhite),
		meta:    color.New(color.FgHiBlue),
	}
	if !enabled {
		for _, c := range []*color.Color{s.heading, s.id, s.value, s.total, s.meta} {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled resolves a --color mode of auto, always or never.
// auto colors only a terminal stdout with NO_COLOR unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

// jsonReport is the JSON shape written by scan and report.
type jsonReport struct {
	Schematics []*types.Summary `json:"schematics"`
	PartSum    uint64           `json:"part_sum"`
	GearSum    uint64           `json:"gear_sum"`
}

func writeJSON(out io.Writer, sums []*types.Summary) error {
	partSum, gearSum, err := analyzer.Totals(sums)
	if err != nil {
		return err
	}
	if sums == nil {
		sums = []*types.Summary{}
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{Schematics: sums, PartSum: partSum, GearSum: gearSum})
}

func writeSARIF(out io.Writer, sums []*types.Summary) error {
	report := sarif.NewReport()
	for _, s := range sums {
		report.AddSummary(s)
	}

	jsonBytes, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("serializing SARIF: %w", err)
	}
	if _, err := out.Write(jsonBytes); err != nil {
		return fmt.Errorf("writing SARIF output: %w", err)
	}
	return nil
}

// writeHuman prints one block per schematic and the grand totals.
// listGears adds one line per contributing gear.
func writeHuman(out io.Writer, sums []*types.Summary, s *styles, listGears bool) error {
	partSum, gearSum, err := analyzer.Totals(sums)
	if err != nil {
		return err
	}

	if len(sums) == 0 {
		fmt.Fprintf(out, "\nNo schematics.\n")
		return nil
	}

	for i, sum := range sums {
		fmt.Fprintf(out, "%s (%s %s)\n",
			s.heading.Sprintf("Schematic %d/%d", i+1, len(sums)),
			s.heading.Sprint("id"),
			s.id.Sprint(sum.SchematicID.Short()))
		fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("Source:"), s.meta.Sprint(sum.Source))
		fmt.Fprintf(out, "%s %dx%d\n", s.heading.Sprint("Grid:"), sum.Rows, sum.Cols)
		fmt.Fprintf(out, "%s %d (sum %s)\n",
			s.heading.Sprint("Part numbers:"), len(sum.Parts), s.value.Sprint(sum.PartSum))
		fmt.Fprintf(out, "%s %d (sum %s)\n",
			s.heading.Sprint("Gears:"), len(sum.Gears), s.value.Sprint(sum.GearSum))

		if listGears {
			gears := sum.Gears
			if len(gears) > maxGearLines {
				fmt.Fprintf(out, "Showing %d/%d gears:\n", maxGearLines, len(gears))
				gears = gears[:maxGearLines]
			}
			for _, g := range gears {
				p := g.Gear.Point()
				fmt.Fprintf(out, "    %d:%d  %d * %d = %s\n",
					p.Line, p.Column, g.Numbers[0].Value, g.Numbers[1].Value, s.value.Sprint(g.Ratio))
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%s %s\n", s.total.Sprint("Total part number sum:"), s.value.Sprint(partSum))
	fmt.Fprintf(out, "%s %s\n", s.total.Sprint("Total gear ratio sum:"), s.value.Sprint(gearSum))
	return nil
}

// writeSummaries dispatches on an output format of human, json or sarif.
func writeSummaries(out io.Writer, format string, sums []*types.Summary, s *styles, listGears bool) error {
	switch format {
	case "json":
		return writeJSON(out, sums)
	case "sarif":
		return writeSARIF(out, sums)
	case "human":
		return writeHuman(out, sums, s, listGears)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
