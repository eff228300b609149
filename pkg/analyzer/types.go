package analyzer

import "github.com/praetorian-inc/schematic/pkg/types"

// ContentItem represents one grid handed over for analysis
type ContentItem struct {
	Source   string            `json:"source"`   // e.g., "inline:1", "/inputs/03.txt"
	Content  string            `json:"content"`  // the grid text
	Metadata map[string]string `json:"metadata"` // optional metadata
}

// ItemError records a batch item that could not be analyzed
type ItemError struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// BatchResult represents batch analysis results
type BatchResult struct {
	Results []*types.Summary `json:"results"`
	Errors  []ItemError      `json:"errors,omitempty"`
	PartSum uint64           `json:"part_sum"`
	GearSum uint64           `json:"gear_sum"`
}

// DebugLogger provides platform-specific logging
type DebugLogger interface {
	Log(format string, args ...interface{})
}

// NoopLogger is a no-op logger
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...interface{}) {}
