// Package summary composes deterministic natural-language descriptions
// of source files. It is the mandatory fallback when no AI augmentation
// is available: identical inputs always yield the identical string.
package summary

import (
	"fmt"
	"strings"
)

// Input carries the pipeline outputs the synthesizer describes.
type Input struct {
	Path       string
	Language   string
	Text       string
	LineCount  int
	Classes    int
	Functions  int
	Imports    int
	Complexity float64
}

// Synthesize builds the summary sentence by sentence: file type, size
// tier, structure, dependency tier, and complexity band. Clauses that
// have nothing to say (no declarations, no imports) are omitted.
func Synthesize(in Input) string {
	parts := []string{
		fmt.Sprintf("%s written in %s", Classify(in.Path, in.Text), titleCase(in.Language)),
	}

	switch {
	case in.LineCount < 50:
		parts = append(parts, fmt.Sprintf("Compact implementation with %d lines", in.LineCount))
	case in.LineCount < 200:
		parts = append(parts, fmt.Sprintf("Well-sized module with %d lines", in.LineCount))
	default:
		parts = append(parts, fmt.Sprintf("Comprehensive implementation with %d lines", in.LineCount))
	}

	if in.Classes > 0 {
		parts = append(parts, fmt.Sprintf("Defines %d class(es) with object-oriented structure", in.Classes))
	}
	if in.Functions > 0 {
		parts = append(parts, fmt.Sprintf("Contains %d function(s) with clear separation of concerns", in.Functions))
	}

	if in.Imports > 0 {
		switch {
		case in.Imports <= 3:
			parts = append(parts, "Minimal dependencies promoting simplicity")
		case in.Imports <= 8:
			parts = append(parts, "Moderate use of external libraries")
		default:
			parts = append(parts, "Extensive use of external dependencies")
		}
	}

	switch {
	case in.Complexity < 3:
		parts = append(parts, "Simple, maintainable code structure")
	case in.Complexity < 6:
		parts = append(parts, "Well-balanced complexity with good readability")
	case in.Complexity < 8:
		parts = append(parts, "Moderate complexity requiring careful review")
	default:
		parts = append(parts, "High complexity suggesting refactoring opportunities")
	}

	return strings.Join(parts, ". ") + "."
}

func titleCase(s string) string {
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
