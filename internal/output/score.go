package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScoreBar renders a visual bar for a 0-10 score.
// Example: "████████░░ 8.0/10"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int((score / 10.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", scoreStyle(score).Render(bar),
		StyleMuted.Render(fmt.Sprintf("%.1f/10", score)))
}

// FormatScore renders a numeric score with severity coloring. For
// complexity, high is bad; for documentation quality, high is good, so
// callers pick the matching helper.
func FormatScore(score float64) string {
	return scoreStyle(score).Render(fmt.Sprintf("%.2f", score))
}

// FormatComplexity colors a complexity score; high complexity is bad.
func FormatComplexity(score float64) string {
	switch {
	case score > 7:
		return StyleError.Render(fmt.Sprintf("%.2f", score))
	case score > 5:
		return StyleWarning.Render(fmt.Sprintf("%.2f", score))
	default:
		return StyleSuccess.Render(fmt.Sprintf("%.2f", score))
	}
}

// scoreStyle picks a style for a 0-10 quality score where higher is
// better.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 7:
		return StyleSuccess
	case score >= 4:
		return StyleWarning
	default:
		return StyleError
	}
}
