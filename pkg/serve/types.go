package serve

import (
	"encoding/json"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
)

// Request types accepted by the server.
const (
	TypeAnalyze      = "analyze"
	TypeAnalyzeBatch = "analyze_batch"
	TypeStats        = "stats"
	TypeClose        = "close"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AnalyzePayload is the payload for "analyze" requests
type AnalyzePayload struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// AnalyzeBatchPayload is the payload for "analyze_batch" requests
type AnalyzeBatchPayload struct {
	Items []analyzer.ContentItem `json:"items"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // request type, "ready" or "decode"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
}

// StatsData is the data field for "stats" responses
type StatsData struct {
	Schematics  int `json:"schematics"`
	PartNumbers int `json:"part_numbers"`
	GearRatios  int `json:"gear_ratios"`
}
