package suggest

import "strings"

// DocumentationCoverage flags weak documentation scores.
func DocumentationCoverage(ctx *Context) []string {
	switch {
	case ctx.DocScore < 3:
		return []string{"Add comprehensive documentation and inline comments to improve code maintainability"}
	case ctx.DocScore < 6:
		return []string{"Enhance documentation coverage, particularly for complex functions"}
	}
	return nil
}

// ComplexityReduction flags high complexity scores.
func ComplexityReduction(ctx *Context) []string {
	switch {
	case ctx.Complexity > 7:
		return []string{"Consider refactoring complex functions into smaller, more focused units"}
	case ctx.Complexity > 5:
		return []string{"Review high-complexity sections for potential simplification"}
	}
	return nil
}

// ModuleOrganization flags files with too many declarations, or none at
// all despite having imports.
func ModuleOrganization(ctx *Context) []string {
	switch {
	case ctx.Declarations > 15:
		return []string{"Large number of functions detected - consider splitting into multiple modules"}
	case ctx.Declarations == 0 && ctx.Imports > 0:
		return []string{"Consider organizing code into functions for better structure and reusability"}
	}
	return nil
}

// styleMessage is one language-specific style suggestion, optionally
// suppressed when the file path contains a substring (case-insensitive).
type styleMessage struct {
	text       string
	unlessPath string
}

// languageStyles maps language tags to their fixed style suggestions.
// Dispatch is data-driven: adding a language means adding an entry here,
// not a branch.
var languageStyles = map[string][]styleMessage{
	"python": {
		{text: "Follow PEP 8 style guidelines and consider adding type hints for better code clarity"},
		{text: "Consider adding unit tests using pytest or unittest framework", unlessPath: "test"},
	},
	"javascript": {
		{text: "Consider using TypeScript for better type safety and developer experience"},
		{text: "Implement ESLint and Prettier for consistent code formatting"},
	},
	"java": {
		{text: "Follow Java coding conventions and consider using modern Java features"},
		{text: "Add comprehensive JavaDoc comments for public methods and classes"},
	},
}

// LanguageStyle emits the fixed per-language style suggestions.
func LanguageStyle(ctx *Context) []string {
	var msgs []string
	path := strings.ToLower(ctx.Path)
	for _, m := range languageStyles[ctx.Language] {
		if m.unlessPath != "" && strings.Contains(path, m.unlessPath) {
			continue
		}
		msgs = append(msgs, m.text)
	}
	return msgs
}

// DependencyHygiene flags unusual import counts.
func DependencyHygiene(ctx *Context) []string {
	switch {
	case ctx.Imports > 12:
		return []string{"Review dependencies - consider if all imports are necessary and actively used"}
	case ctx.Imports == 0 && ctx.Declarations > 3:
		return []string{"Consider leveraging established libraries to reduce custom implementation complexity"}
	}
	return nil
}

// HardcodedSecrets warns whenever the text mentions passwords or
// secrets, regardless of language.
func HardcodedSecrets(ctx *Context) []string {
	text := strings.ToLower(ctx.Text)
	if strings.Contains(text, "password") || strings.Contains(text, "secret") {
		return []string{"Ensure sensitive data is properly secured and not hardcoded in source"}
	}
	return nil
}

// PerformanceReview flags complex files with many declarations.
func PerformanceReview(ctx *Context) []string {
	if ctx.Complexity > 6 && ctx.Declarations > 8 {
		return []string{"Consider performance optimization for complex operations and frequent function calls"}
	}
	return nil
}

// ClosingPractices always emits the generic quality suggestions. They
// only appear when earlier rules left room under the cap.
func ClosingPractices(ctx *Context) []string {
	return []string{
		"Implement comprehensive error handling and input validation where appropriate",
		"Consider adding integration tests to verify component interactions",
	}
}
