//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("SchematicAnalyze", js.FuncOf(analyze))
	js.Global().Set("SchematicNewAnalyzer", js.FuncOf(newAnalyzer))
	js.Global().Set("SchematicAnalyzeWith", js.FuncOf(analyzeWith))
	js.Global().Set("SchematicAnalyzeBatch", js.FuncOf(analyzeBatch))
	js.Global().Set("SchematicCloseAnalyzer", js.FuncOf(closeAnalyzer))
	js.Global().Set("SchematicDays", js.FuncOf(days))

	// Keep WASM running
	<-make(chan struct{})
}
