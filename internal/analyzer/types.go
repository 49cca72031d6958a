// Package analyzer implements the deterministic lexical analysis
// pipeline: declaration and import extraction, complexity and
// documentation scoring, and the aggregate per-file result. Every
// function here is pure; the only shared state is the read-only grammar
// table.
package analyzer

// Declaration is a function or class definition site found by pattern
// matching. Line numbers are 1-based.
type Declaration struct {
	Name string `json:"name"`
	Line int    `json:"line"`
	Kind string `json:"kind"`
}

// Comment is a recognized comment with its 1-based starting line.
type Comment struct {
	Text  string `json:"text"`
	Line  int    `json:"line"`
	Block bool   `json:"block"`
}

// Result is the aggregate analysis output for one source unit. It maps
// 1:1 onto the response schema consumed by downstream tooling: kinds are
// discarded at this boundary (KeyFunctions carries names only) and
// Dependencies is an unordered unique set rendered as a slice.
type Result struct {
	FilePath             string   `json:"file_path"`
	Language             string   `json:"language"`
	Summary              string   `json:"summary"`
	ComplexityScore      float64  `json:"complexity_score"`
	KeyFunctions         []string `json:"key_functions"`
	Dependencies         []string `json:"dependencies"`
	DocumentationQuality float64  `json:"documentation_quality"`
	Suggestions          []string `json:"suggestions"`
}
