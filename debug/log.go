// Package debug provides env-flag gated tracing for graph operations.
//
// Flags are read once at process start:
//
//	GRAPH_DEBUG_WRAP  - trace document wrapping
//	GRAPH_DEBUG_PATCH - trace patch application
//	GRAPH_DEBUG_QUERY - trace expression evaluation
//	GRAPH_DEBUG_DIFF  - trace object diffing
package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
