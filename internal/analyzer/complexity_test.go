package analyzer

import (
	"strings"
	"testing"
)

func TestScoreComplexityEmptyText(t *testing.T) {
	if got := ScoreComplexity(""); got != 0.0 {
		t.Errorf("empty text score = %v, want 0.0", got)
	}
}

func TestScoreComplexityCommentOnlyText(t *testing.T) {
	if got := ScoreComplexity("# just a comment\n# another\n"); got != 0.0 {
		t.Errorf("comment-only score = %v, want 0.0", got)
	}
}

func TestScoreComplexityKnownValue(t *testing.T) {
	// One conditional keyword over ten code lines:
	// 1 * 1.0 / 10 * 10 = 1.0.
	text := "if x:\n" + strings.Repeat("x = 1\n", 9)
	if got := ScoreComplexity(text); got != 1.0 {
		t.Errorf("score = %v, want 1.0", got)
	}
}

func TestScoreComplexityWeights(t *testing.T) {
	// A loop weighs twice a conditional at the same density.
	padding := strings.Repeat("x = 1\n", 9)
	loop := ScoreComplexity("for x in y:\n" + padding)
	conditional := ScoreComplexity("if x:\n" + padding)
	if loop != 2*conditional {
		t.Errorf("loop = %v, conditional = %v; want loop == 2*conditional", loop, conditional)
	}
}

func TestScoreComplexityMonotoneInKeywords(t *testing.T) {
	// Adding keyword occurrences while holding the code-line count
	// fixed never lowers the score.
	padding := strings.Repeat("x = 1\n", 19)
	prev := -1.0
	for keywords := 0; keywords <= 5; keywords++ {
		line := strings.Repeat("if ", keywords) + "x\n"
		score := ScoreComplexity(line + padding)
		if score < prev {
			t.Fatalf("score decreased from %v to %v at %d keywords", prev, score, keywords)
		}
		prev = score
	}
}

func TestScoreComplexitySaturatesAtTen(t *testing.T) {
	// A short snippet dense with keywords pins the score at the cap.
	// That saturation is intentional heuristic behavior.
	text := "for while do if else try catch async await\n"
	if got := ScoreComplexity(text); got != 10.0 {
		t.Errorf("saturated score = %v, want 10.0", got)
	}
}

func TestScoreComplexityCaseInsensitive(t *testing.T) {
	lower := ScoreComplexity("if x\ny\n")
	upper := ScoreComplexity("IF x\ny\n")
	if lower != upper {
		t.Errorf("case sensitivity detected: %v != %v", lower, upper)
	}
}
