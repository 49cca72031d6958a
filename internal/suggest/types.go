// Package suggest derives prioritized improvement suggestions from
// analysis scores and raw text properties. Rules live in a fixed-order
// table; the first MaxSuggestions triggered messages win and later rules
// are dropped. That truncation policy is part of the contract, not an
// implementation detail.
package suggest

// MaxSuggestions caps the number of messages returned per analysis.
const MaxSuggestions = 6

// Context carries everything a rule may inspect. It is assembled by the
// analysis pipeline and never mutated by rules.
type Context struct {
	// DocScore is the documentation-quality score in [0, 10].
	DocScore float64

	// Complexity is the complexity score in [0, 10].
	Complexity float64

	// Declarations is the number of extracted declarations.
	Declarations int

	// Imports is the number of unique import targets.
	Imports int

	// Language is the language tag of the source unit.
	Language string

	// Path is the file path of the source unit.
	Path string

	// Text is the raw source text.
	Text string
}

// Rule examines the context and produces zero or more suggestion
// messages. Rules are self-contained and evaluated in table order.
type Rule func(ctx *Context) []string
