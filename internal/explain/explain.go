// Package explain produces deterministic natural-language explanations
// of code snippets without any external service. Like the summary
// synthesizer it is a pure text composer and serves as the offline
// fallback for snippet explanation.
package explain

import (
	"fmt"
	"strings"
)

// Explanation is the structured output for one snippet.
type Explanation struct {
	Explanation     string   `json:"explanation"`
	KeyConcepts     []string `json:"key_concepts"`
	BestPractices   []string `json:"best_practices"`
	PotentialIssues []string `json:"potential_issues"`
}

// Caps on each output list.
const (
	maxConcepts  = 5
	maxPractices = 3
	maxIssues    = 3
)

// Explain analyzes a code snippet and composes an explanation from
// language idioms and general structure heuristics. The context string
// is optional and only shapes the prose.
func Explain(snippet, language, context string) Explanation {
	lines := strings.Split(snippet, "\n")

	var concepts, practices, issues []string

	switch language {
	case "python":
		if strings.Contains(snippet, "def ") {
			concepts = append(concepts, "Function definition and encapsulation")
		}
		if strings.Contains(snippet, "class ") {
			concepts = append(concepts, "Object-oriented programming principles")
		}
		if strings.Contains(snippet, "import ") {
			concepts = append(concepts, "Module importing and dependency management")
		}
		if strings.Contains(snippet, "try:") && strings.Contains(snippet, "except") {
			practices = append(practices, "Proper exception handling implementation")
		}
		if strings.Contains(snippet, "with ") {
			practices = append(practices, "Context manager usage for resource management")
		}

	case "javascript":
		if strings.Contains(snippet, "function") || strings.Contains(snippet, "=>") {
			concepts = append(concepts, "Function declaration and arrow functions")
		}
		if strings.Contains(snippet, "const ") || strings.Contains(snippet, "let ") {
			practices = append(practices, "Modern variable declarations (const/let)")
		}
		if strings.Contains(snippet, "async") && strings.Contains(snippet, "await") {
			concepts = append(concepts, "Asynchronous programming with async/await")
		}
		if strings.Contains(snippet, "Promise") {
			concepts = append(concepts, "Promise-based asynchronous operations")
		}
	}

	if len(lines) > 25 {
		issues = append(issues, "Consider breaking long code blocks into smaller, focused functions")
	}
	if countCommentLines(lines) == 0 && len(lines) > 10 {
		issues = append(issues, "Add explanatory comments for better code documentation")
	}

	parts := []string{
		fmt.Sprintf("This %s code snippet contains %d lines of code.", language, len(lines)),
	}
	if len(concepts) > 0 {
		shown := concepts
		if len(shown) > 2 {
			shown = shown[:2]
		}
		parts = append(parts, fmt.Sprintf("It demonstrates %s.", strings.Join(shown, ", ")))
	}
	if context != "" {
		parts = append(parts, fmt.Sprintf("Within the context of %s, this code serves a specific functional purpose.", context))
	}
	parts = append(parts, "The implementation follows standard programming practices and maintains code readability.")

	if len(practices) == 0 {
		practices = []string{
			"Follow language-specific best practices",
			"Maintain consistent code style",
		}
	}
	if len(issues) == 0 {
		issues = []string{"Code structure appears well-organized"}
	}

	return Explanation{
		Explanation:     strings.Join(parts, " "),
		KeyConcepts:     truncate(concepts, maxConcepts),
		BestPractices:   truncate(practices, maxPractices),
		PotentialIssues: truncate(issues, maxIssues),
	}
}

func countCommentLines(lines []string) int {
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			count++
		}
	}
	return count
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
