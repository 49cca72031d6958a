package analyzer

import (
	"math"
	"strings"

	"github.com/blackwell-systems/codelens/internal/grammar"
)

// Documentation window around a declaration line: docWindowBefore lines
// above through docWindowAfter lines below are searched for a docstring.
const (
	docWindowBefore = 4
	docWindowAfter  = 3
)

// ScoreDocumentation computes the documentation-quality heuristic for
// text: a weighted blend of per-declaration docstring coverage (70%)
// and comment density (30%), scaled to [0, 10] with two decimals.
//
// Comment lines are classified by the language-specific comment-starter
// table. The comment-density term saturates once comments exceed 50% of
// code lines, so a wall of comments cannot push the score past what
// full docstring coverage earns.
func ScoreDocumentation(text, language string) float64 {
	g := grammar.Lookup(language)
	lines := strings.Split(text, "\n")

	codeLines := 0
	for _, line := range lines {
		if !isCommentLine(line, g) {
			codeLines++
		}
	}
	if codeLines == 0 {
		return 0.0
	}
	commentLines := len(lines) - codeLines

	decls := ExtractDeclarations(text, language)
	documented := 0
	for _, d := range decls {
		if hasDocstring(window(lines, d.Line), g) {
			documented++
		}
	}

	// Zero declarations contribute a zero coverage term; the score is
	// then driven entirely by comment density.
	docRatio := 0.0
	if len(decls) > 0 {
		docRatio = float64(documented) / float64(len(decls))
	}
	commentRatio := math.Min(float64(commentLines)/float64(codeLines), 0.5) * 2

	score := (docRatio*0.7 + commentRatio*0.3) * 10
	return round2(math.Min(score, 10.0))
}

// isCommentLine reports whether a line is blank or starts with one of
// the language's comment markers. Blank lines count as non-code.
func isCommentLine(line string, g grammar.Grammar) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	for _, starter := range g.CommentStarters {
		if strings.HasPrefix(trimmed, starter) {
			return true
		}
	}
	return false
}

// window joins the fixed documentation window around a 1-based
// declaration line, clamped to the text bounds.
func window(lines []string, declLine int) string {
	lo := declLine - 1 - docWindowBefore
	if lo < 0 {
		lo = 0
	}
	hi := declLine + docWindowAfter
	if hi > len(lines) {
		hi = len(lines)
	}
	return strings.Join(lines[lo:hi], "\n")
}

func hasDocstring(text string, g grammar.Grammar) bool {
	for _, re := range g.Docstrings {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
