// Package grammar holds the per-language pattern tables used by the
// analysis engine: declaration patterns, import patterns, comment
// markers, and docstring markers. The table is built once at package
// init and never mutated.
package grammar

import (
	"regexp"
	"strings"
)

// Declaration kinds.
const (
	KindFunction = "function"
	KindClass    = "class"
)

// DeclarationPattern is a compiled declaration matcher together with the
// kind of declaration it recognizes. The first capture group must be the
// declaration name.
type DeclarationPattern struct {
	Pattern *regexp.Regexp
	Kind    string
}

// Grammar is the full pattern set for one language. A zero-value Grammar
// is valid and means "no patterns": extraction over it yields empty
// results and scoring falls back to generic text properties.
type Grammar struct {
	// Language is the canonical language tag, empty for the zero Grammar.
	Language string

	// Declarations are evaluated in order; match results are
	// concatenated per pattern, not re-sorted by source line.
	Declarations []DeclarationPattern

	// Imports are evaluated in order; captures are unioned into a set.
	Imports []*regexp.Regexp

	// CommentStarters are the line prefixes that mark a comment line.
	CommentStarters []string

	// Docstrings detect documentation blocks near a declaration.
	Docstrings []*regexp.Regexp
}

// Empty reports whether the grammar carries no patterns at all.
func (g Grammar) Empty() bool {
	return len(g.Declarations) == 0 && len(g.Imports) == 0 &&
		len(g.CommentStarters) == 0 && len(g.Docstrings) == 0
}

var table map[string]Grammar

func init() {
	table = buildTable()
}

// Lookup returns the grammar for a language tag. Unknown tags yield the
// zero Grammar rather than an error; every consumer treats "no patterns"
// as a valid, low-information input.
func Lookup(language string) Grammar {
	return table[language]
}

// Languages returns all registered language tags.
func Languages() []string {
	langs := make([]string, 0, len(table))
	for lang := range table {
		langs = append(langs, lang)
	}
	return langs
}

// declarations compiles raw declaration patterns in multi-line mode and
// derives each pattern's kind from its source: a pattern whose text
// mentions "class" recognizes class declarations, everything else counts
// as a function. Kind is fixed here, at table construction, so no
// per-language branching happens at match time.
func declarations(sources ...string) []DeclarationPattern {
	out := make([]DeclarationPattern, 0, len(sources))
	for _, src := range sources {
		kind := KindFunction
		if strings.Contains(strings.ToLower(src), "class") {
			kind = KindClass
		}
		out = append(out, DeclarationPattern{
			Pattern: regexp.MustCompile("(?m)" + src),
			Kind:    kind,
		})
	}
	return out
}

func patterns(sources ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		out = append(out, regexp.MustCompile(src))
	}
	return out
}
