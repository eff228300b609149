// Package sarif renders analysis results as a SARIF 2.1.0 log.
package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI   = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version     = "2.1.0"
	ToolName    = "schematic"
	ToolVersion = "0.1.0"
)

// Rule IDs reported by the tool.
const (
	RulePartNumber = "schematic.part-number"
	RuleGearRatio  = "schematic.gear-ratio"
)

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes one kind of result
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result is one part number or gear
type Result struct {
	RuleID     string         `json:"ruleId"`
	Level      string         `json:"level"`
	Message    Message        `json:"message"`
	Locations  []Location     `json:"locations"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range
type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// NewReport creates a report with both rules registered.
func NewReport() *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules: []Rule{
							{
								ID:               RulePartNumber,
								Name:             "PartNumber",
								ShortDescription: ShortDescription{Text: "Number adjacent to a symbol"},
							},
							{
								ID:               RuleGearRatio,
								Name:             "GearRatio",
								ShortDescription: ShortDescription{Text: "'*' adjacent to exactly two numbers"},
							},
						},
					},
				},
				Results: []Result{},
			},
		},
	}
}

// AddPartNumber adds a part number found in filePath.
func (r *Report) AddPartNumber(p *types.PartNumber, filePath string) {
	r.add(Result{
		RuleID:    RulePartNumber,
		Level:     "note",
		Message:   Message{Text: fmt.Sprintf("part number %d", p.Number.Value)},
		Locations: locations(filePath, p.Location),
		Properties: map[string]any{
			"id":    p.ID,
			"value": p.Number.Value,
		},
	})
}

// AddGearRatio adds a gear found in filePath.
func (r *Report) AddGearRatio(g *types.GearRatio, filePath string) {
	r.add(Result{
		RuleID: RuleGearRatio,
		Level:  "note",
		Message: Message{
			Text: fmt.Sprintf("gear ratio %d (%d * %d)", g.Ratio, g.Numbers[0].Value, g.Numbers[1].Value),
		},
		Locations: locations(filePath, g.Location),
		Properties: map[string]any{
			"id":    g.ID,
			"ratio": g.Ratio,
		},
	})
}

// AddSummary adds every part number and gear of one analyzed grid.
func (r *Report) AddSummary(s *types.Summary) {
	for _, p := range s.Parts {
		r.AddPartNumber(p, s.Source)
	}
	for _, g := range s.Gears {
		r.AddGearRatio(g, s.Source)
	}
}

func (r *Report) add(res Result) {
	r.Runs[0].Results = append(r.Runs[0].Results, res)
}

func locations(filePath string, loc types.Location) []Location {
	return []Location{
		{
			PhysicalLocation: PhysicalLocation{
				ArtifactLocation: ArtifactLocation{URI: formatFileURI(filePath)},
				Region: Region{
					StartLine:   loc.Source.Start.Line,
					StartColumn: loc.Source.Start.Column,
					EndLine:     loc.Source.End.Line,
					EndColumn:   loc.Source.End.Column,
				},
			},
		},
	}
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
