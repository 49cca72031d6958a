package analyzer

import (
	"strings"

	"github.com/blackwell-systems/codelens/internal/grammar"
)

// ExtractDeclarations finds function and class declarations in text
// using the language's declaration patterns. Patterns are evaluated in
// registration order and match results are concatenated per pattern, in
// discovery order within each pattern. The list is deliberately NOT
// re-sorted by line number: a class declared on line 2 can follow a
// function declared on line 10 when the class pattern is registered
// later. Consumers must not assume line ordering.
func ExtractDeclarations(text, language string) []Declaration {
	g := grammar.Lookup(language)

	var decls []Declaration
	for _, dp := range g.Declarations {
		for _, m := range dp.Pattern.FindAllStringSubmatchIndex(text, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			decls = append(decls, Declaration{
				Name: text[m[2]:m[3]],
				Line: 1 + strings.Count(text[:m[0]], "\n"),
				Kind: dp.Kind,
			})
		}
	}
	return decls
}

// ExtractImports collects the unique import targets referenced by text.
// Dedup is by exact string equality, case-sensitive: "./x" and "x" are
// distinct entries. The returned slice has no ordering guarantee.
func ExtractImports(text, language string) []string {
	g := grammar.Lookup(language)

	seen := make(map[string]struct{})
	var imports []string
	for _, re := range g.Imports {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			target := m[1]
			if _, ok := seen[target]; ok {
				continue
			}
			seen[target] = struct{}{}
			imports = append(imports, target)
		}
	}
	return imports
}

// ExtractComments returns the comments found in text with their starting
// lines. Block comments are those opened by a multi-line marker; every
// other match is an inline comment.
func ExtractComments(text, language string) []Comment {
	g := grammar.Lookup(language)

	var comments []Comment
	for _, starter := range g.CommentStarters {
		block := starter == "/*" || starter == `"""` || starter == "'''"
		for i, line := range strings.Split(text, "\n") {
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, starter) {
				continue
			}
			body := strings.TrimSpace(strings.TrimPrefix(trimmed, starter))
			if body == "" {
				continue
			}
			comments = append(comments, Comment{
				Text:  body,
				Line:  i + 1,
				Block: block,
			})
		}
	}
	return comments
}
