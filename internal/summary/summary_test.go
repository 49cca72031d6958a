package summary

import (
	"strings"
	"testing"
)

func TestSynthesizeDeterministic(t *testing.T) {
	in := Input{Path: "svc.py", Language: "python", LineCount: 120, Classes: 1, Functions: 4, Imports: 5, Complexity: 4.2}
	if Synthesize(in) != Synthesize(in) {
		t.Error("identical inputs produced different summaries")
	}
}

func TestSynthesizeFullSentence(t *testing.T) {
	got := Synthesize(Input{
		Path:       "user_service.py",
		Language:   "python",
		LineCount:  120,
		Classes:    1,
		Functions:  4,
		Imports:    5,
		Complexity: 4.2,
	})
	want := "Service layer component written in Python. " +
		"Well-sized module with 120 lines. " +
		"Defines 1 class(es) with object-oriented structure. " +
		"Contains 4 function(s) with clear separation of concerns. " +
		"Moderate use of external libraries. " +
		"Well-balanced complexity with good readability."
	if got != want {
		t.Errorf("summary = %q\nwant    %q", got, want)
	}
}

func TestSynthesizeOmitsEmptyClauses(t *testing.T) {
	got := Synthesize(Input{Path: "x.py", Language: "python", LineCount: 3})
	if strings.Contains(got, "class(es)") || strings.Contains(got, "function(s)") ||
		strings.Contains(got, "dependencies") || strings.Contains(got, "libraries") {
		t.Errorf("empty clauses leaked into %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("summary missing trailing period: %q", got)
	}
}

func TestSynthesizeSizeTiers(t *testing.T) {
	cases := []struct {
		lines int
		want  string
	}{
		{10, "Compact implementation with 10 lines"},
		{50, "Well-sized module with 50 lines"},
		{200, "Comprehensive implementation with 200 lines"},
	}
	for _, c := range cases {
		got := Synthesize(Input{Path: "x.py", Language: "python", LineCount: c.lines})
		if !strings.Contains(got, c.want) {
			t.Errorf("%d lines: %q lacks %q", c.lines, got, c.want)
		}
	}
}

func TestSynthesizeComplexityBands(t *testing.T) {
	cases := []struct {
		complexity float64
		want       string
	}{
		{0.0, "Simple, maintainable code structure"},
		{3.0, "Well-balanced complexity with good readability"},
		{6.0, "Moderate complexity requiring careful review"},
		{8.0, "High complexity suggesting refactoring opportunities"},
	}
	for _, c := range cases {
		got := Synthesize(Input{Path: "x.py", Language: "python", LineCount: 1, Complexity: c.complexity})
		if !strings.Contains(got, c.want) {
			t.Errorf("complexity %v: %q lacks %q", c.complexity, got, c.want)
		}
	}
}

func TestClassifyFilenamePriority(t *testing.T) {
	// "test" outranks later keywords even when both appear.
	if got := Classify("test_config.py", ""); got != "Unit test file" {
		t.Errorf("test_config.py = %q", got)
	}
	if got := Classify("app_config.py", ""); got != "Configuration module" {
		t.Errorf("app_config.py = %q", got)
	}
}

func TestClassifyContentHeuristics(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"class", "class Foo:\n    def __init__(self):\n        pass", "Object-oriented class definition"},
		{"script", "if __name__ == '__main__':\n    run()", "Executable script with main entry point"},
		{"functional", "import os\ndef go():\n    pass", "Functional module with utilities"},
		{"js", "export const x = 1", "Modular JavaScript component"},
		{"fallback", "x = 1", "Source code module"},
	}
	for _, c := range cases {
		if got := Classify("z.py", c.text); got != c.want {
			t.Errorf("%s: Classify = %q, want %q", c.name, got, c.want)
		}
	}
}
