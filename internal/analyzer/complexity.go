package analyzer

import (
	"math"
	"regexp"
	"strings"
)

// keywordCategory is one weighted bucket of control-flow keywords.
type keywordCategory struct {
	name     string
	weight   float64
	patterns []*regexp.Regexp
}

// complexityCategories are matched case-insensitively over the whole
// text, independent of language. The weights are fixed and part of the
// scoring contract.
var complexityCategories = []keywordCategory{
	{"loops", 2.0, compileKeywords(`for`, `while`, `do`)},
	{"conditionals", 1.0, compileKeywords(`if`, `else`, `elif`, `switch`, `case`)},
	{"functions", 0.5, compileKeywords(`def`, `function`, `func`)},
	{"classes", 0.5, compileKeywords(`class`)},
	{"exceptions", 1.5, compileKeywords(`try`, `catch`, `except`, `finally`)},
	{"async", 1.5, compileKeywords(`async`, `await`, `Promise`)},
}

func compileKeywords(words ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return out
}

// ScoreComplexity computes the keyword-density complexity heuristic for
// text. The score is weighted keyword occurrences normalized by code
// line count and scaled to [0, 10] with two-decimal precision. Density
// normalization means short snippets packed with keywords saturate
// toward 10; that behavior is intentional.
//
// Code lines are non-blank lines not starting with "#". The marker is
// fixed regardless of language here, unlike the documentation scorer
// which consults the per-language comment table.
func ScoreComplexity(text string) float64 {
	total := 0.0
	for _, cat := range complexityCategories {
		count := 0
		for _, re := range cat.patterns {
			count += len(re.FindAllStringIndex(text, -1))
		}
		total += float64(count) * cat.weight
	}

	codeLines := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			codeLines++
		}
	}
	if codeLines == 0 {
		return 0.0
	}

	return round2(math.Min(total/float64(codeLines)*10, 10.0))
}

// round2 rounds to two decimal places, the precision of every score the
// engine emits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
