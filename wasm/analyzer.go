//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/registry"
)

var (
	analyzers   = make(map[int]*analyzer.Core)
	analyzersMu sync.RWMutex
	nextID      int
)

func errorResult(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}

func marshal(v interface{}) interface{} {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal results: " + err.Error())
	}
	return string(jsonBytes)
}

// analyze analyzes one grid without keeping any state.
// JS: SchematicAnalyze(content, source) -> JSON summary or error
func analyze(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("content argument required")
	}

	sum, err := analyzer.Summarize([]byte(args[0].String()))
	if err != nil {
		return errorResult("analyze failed: " + err.Error())
	}
	if len(args) > 1 {
		sum.Source = args[1].String()
	}

	return marshal(sum)
}

// newAnalyzer creates an analyzer backed by an in-memory store.
// JS: SchematicNewAnalyzer() -> {handle} or error
func newAnalyzer(this js.Value, args []js.Value) interface{} {
	core, err := analyzer.NewCore(analyzer.Config{})
	if err != nil {
		return errorResult("failed to create analyzer: " + err.Error())
	}

	analyzersMu.Lock()
	id := nextID
	nextID++
	analyzers[id] = core
	analyzersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

func lookup(handle int) (*analyzer.Core, bool) {
	analyzersMu.RLock()
	defer analyzersMu.RUnlock()
	core, ok := analyzers[handle]
	return core, ok
}

// analyzeWith analyzes one grid and records it in the analyzer's store.
// JS: SchematicAnalyzeWith(handle, content, source) -> JSON summary or error
func analyzeWith(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("handle and content arguments required")
	}

	core, ok := lookup(args[0].Int())
	if !ok {
		return errorResult("invalid analyzer handle")
	}

	source := ""
	if len(args) > 2 {
		source = args[2].String()
	}

	sum, err := core.Analyze(args[1].String(), source)
	if err != nil {
		return errorResult("analyze failed: " + err.Error())
	}
	return marshal(sum)
}

// analyzeBatch analyzes several grids. Per-item failures are reported in
// the result's errors list.
// JS: SchematicAnalyzeBatch(handle, itemsJSON) -> JSON batch result or error
func analyzeBatch(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("handle and itemsJSON arguments required")
	}

	core, ok := lookup(args[0].Int())
	if !ok {
		return errorResult("invalid analyzer handle")
	}

	var items []analyzer.ContentItem
	if err := json.Unmarshal([]byte(args[1].String()), &items); err != nil {
		return errorResult("failed to parse items JSON: " + err.Error())
	}

	result, err := core.AnalyzeBatch(items)
	if err != nil {
		return errorResult("batch analyze failed: " + err.Error())
	}
	return marshal(result)
}

// closeAnalyzer closes an analyzer and releases its store.
// JS: SchematicCloseAnalyzer(handle)
func closeAnalyzer(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("handle argument required")
	}

	handle := args[0].Int()

	analyzersMu.Lock()
	core, ok := analyzers[handle]
	if ok {
		delete(analyzers, handle)
	}
	analyzersMu.Unlock()

	if !ok {
		return errorResult("invalid analyzer handle")
	}

	core.Close()

	return nil
}

// days returns the builtin day registry as JSON.
// JS: SchematicDays() -> JSON array of days
func days(this js.Value, args []js.Value) interface{} {
	reg, err := registry.Builtin()
	if err != nil {
		return errorResult("failed to load day registry: " + err.Error())
	}
	return marshal(reg.Solutions())
}
