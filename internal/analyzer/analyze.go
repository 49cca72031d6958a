package analyzer

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/codelens/internal/grammar"
	"github.com/blackwell-systems/codelens/internal/suggest"
	"github.com/blackwell-systems/codelens/internal/summary"
)

// Analyze runs the full pipeline over one source unit and returns the
// aggregate result. It is a pure function: identical inputs always
// produce bit-identical results, and nothing is retained between calls.
// Unknown language tags degrade to empty declarations and imports with
// scores computed from generic text properties.
func Analyze(path, text, language string) Result {
	decls := ExtractDeclarations(text, language)
	imports := ExtractImports(text, language)
	complexity := ScoreComplexity(text)
	docQuality := ScoreDocumentation(text, language)

	suggestions := suggest.Run(&suggest.Context{
		DocScore:     docQuality,
		Complexity:   complexity,
		Declarations: len(decls),
		Imports:      len(imports),
		Language:     language,
		Path:         path,
		Text:         text,
	})

	classes, functions := 0, 0
	for _, d := range decls {
		if d.Kind == grammar.KindClass {
			classes++
		} else {
			functions++
		}
	}

	lineCount := strings.Count(text, "\n") + 1

	summaryText := summary.Synthesize(summary.Input{
		Path:       path,
		Language:   language,
		Text:       text,
		LineCount:  lineCount,
		Classes:    classes,
		Functions:  functions,
		Imports:    len(imports),
		Complexity: complexity,
	})

	names := make([]string, 0, len(decls))
	for _, d := range decls {
		names = append(names, d.Name)
	}

	return Result{
		FilePath:             path,
		Language:             language,
		Summary:              summaryText,
		ComplexityScore:      complexity,
		KeyFunctions:         names,
		Dependencies:         imports,
		DocumentationQuality: docQuality,
		Suggestions:          suggestions,
	}
}

// FallbackResult builds the minimal zero-score result substituted when
// analysis cannot run to completion, e.g. when a caller-imposed timeout
// fires on pathological input. This path must never fail: it touches
// nothing but its arguments.
func FallbackResult(path, language string) Result {
	return Result{
		FilePath:             path,
		Language:             language,
		Summary:              fmt.Sprintf("%s source file; detailed analysis unavailable", titleCase(language)),
		ComplexityScore:      0.0,
		KeyFunctions:         []string{},
		Dependencies:         []string{},
		DocumentationQuality: 0.0,
		Suggestions: []string{
			"Consider adding comprehensive documentation for better maintainability",
			"Review code organization and consider modular architecture improvements",
			"Implement comprehensive error handling and input validation",
			"Add unit tests to ensure code reliability and facilitate future changes",
		},
	}
}

func titleCase(s string) string {
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
