package explain

import (
	"reflect"
	"strings"
	"testing"
)

func TestExplainDeterministic(t *testing.T) {
	snippet := "def add(a, b):\n    return a + b"
	first := Explain(snippet, "python", "")
	second := Explain(snippet, "python", "")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated explanation diverged:\n%+v\n%+v", first, second)
	}
}

func TestExplainPythonConcepts(t *testing.T) {
	snippet := "import os\n\nclass Loader:\n    def read(self, path):\n        with open(path) as f:\n            return f.read()"
	e := Explain(snippet, "python", "")

	want := []string{
		"Function definition and encapsulation",
		"Object-oriented programming principles",
		"Module importing and dependency management",
	}
	if !reflect.DeepEqual(e.KeyConcepts, want) {
		t.Errorf("KeyConcepts = %v, want %v", e.KeyConcepts, want)
	}
	if len(e.BestPractices) != 1 || e.BestPractices[0] != "Context manager usage for resource management" {
		t.Errorf("BestPractices = %v", e.BestPractices)
	}
}

func TestExplainJavaScriptAsync(t *testing.T) {
	snippet := "const load = async () => {\n  const r = await fetch(url)\n  return r.json()\n}"
	e := Explain(snippet, "javascript", "")

	found := false
	for _, c := range e.KeyConcepts {
		if c == "Asynchronous programming with async/await" {
			found = true
		}
	}
	if !found {
		t.Errorf("async concept missing from %v", e.KeyConcepts)
	}
	if e.BestPractices[0] != "Modern variable declarations (const/let)" {
		t.Errorf("BestPractices = %v", e.BestPractices)
	}
}

func TestExplainDefaultsWhenNothingDetected(t *testing.T) {
	e := Explain("x = 1", "python", "")
	if len(e.KeyConcepts) != 0 {
		t.Errorf("KeyConcepts = %v, want empty", e.KeyConcepts)
	}
	wantPractices := []string{
		"Follow language-specific best practices",
		"Maintain consistent code style",
	}
	if !reflect.DeepEqual(e.BestPractices, wantPractices) {
		t.Errorf("BestPractices = %v", e.BestPractices)
	}
	if len(e.PotentialIssues) != 1 || e.PotentialIssues[0] != "Code structure appears well-organized" {
		t.Errorf("PotentialIssues = %v", e.PotentialIssues)
	}
}

func TestExplainFlagsLongUncommentedCode(t *testing.T) {
	snippet := strings.TrimSuffix(strings.Repeat("x = 1\n", 30), "\n")
	e := Explain(snippet, "python", "")
	wantIssues := []string{
		"Consider breaking long code blocks into smaller, focused functions",
		"Add explanatory comments for better code documentation",
	}
	if !reflect.DeepEqual(e.PotentialIssues, wantIssues) {
		t.Errorf("PotentialIssues = %v, want %v", e.PotentialIssues, wantIssues)
	}
}

func TestExplainContextShapesProse(t *testing.T) {
	e := Explain("x = 1", "python", "a billing service")
	if !strings.Contains(e.Explanation, "Within the context of a billing service") {
		t.Errorf("context missing from %q", e.Explanation)
	}
}

func TestExplainProseMentionsLineCount(t *testing.T) {
	e := Explain("a\nb\nc", "python", "")
	if !strings.Contains(e.Explanation, "3 lines of code") {
		t.Errorf("line count missing from %q", e.Explanation)
	}
}
