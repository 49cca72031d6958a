package analyzer

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/codelens/internal/grammar"
)

const pythonSample = `import os
import hashlib

# Hash helpers.


def digest(data):
    """Return the hex digest of data."""
    return hashlib.sha256(data).hexdigest()


class Store:
    def save(self, key, value):
        pass
`

func TestAnalyzeDeterministic(t *testing.T) {
	first := Analyze("store.py", pythonSample, "python")
	second := Analyze("store.py", pythonSample, "python")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis diverged:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzePythonSample(t *testing.T) {
	r := Analyze("store.py", pythonSample, "python")

	if r.FilePath != "store.py" || r.Language != "python" {
		t.Errorf("identity fields = %q %q", r.FilePath, r.Language)
	}
	wantFuncs := []string{"digest", "save", "Store"}
	if !reflect.DeepEqual(r.KeyFunctions, wantFuncs) {
		t.Errorf("KeyFunctions = %v, want %v", r.KeyFunctions, wantFuncs)
	}
	wantDeps := []string{"os", "hashlib"}
	if !reflect.DeepEqual(r.Dependencies, wantDeps) {
		t.Errorf("Dependencies = %v, want %v", r.Dependencies, wantDeps)
	}
	if r.ComplexityScore < 0 || r.ComplexityScore > 10 {
		t.Errorf("ComplexityScore = %v out of range", r.ComplexityScore)
	}
	if r.DocumentationQuality < 0 || r.DocumentationQuality > 10 {
		t.Errorf("DocumentationQuality = %v out of range", r.DocumentationQuality)
	}
	if r.Summary == "" {
		t.Error("empty summary")
	}
	if len(r.Suggestions) > 6 {
		t.Errorf("got %d suggestions, cap is 6", len(r.Suggestions))
	}
}

func TestAnalyzeEmptyTextAllLanguages(t *testing.T) {
	for _, lang := range grammar.Languages() {
		r := Analyze("empty", "", lang)
		if r.ComplexityScore != 0.0 || r.DocumentationQuality != 0.0 {
			t.Errorf("%s: scores = %v %v, want zeros", lang, r.ComplexityScore, r.DocumentationQuality)
		}
		if len(r.KeyFunctions) != 0 || len(r.Dependencies) != 0 {
			t.Errorf("%s: non-empty extraction from empty text", lang)
		}
		if r.Summary == "" {
			t.Errorf("%s: empty summary", lang)
		}
	}
}

func TestAnalyzeUnknownLanguageDegrades(t *testing.T) {
	r := Analyze("prog.cob", "PERFORM UNTIL done\nEND-PERFORM", "cobol")
	if len(r.KeyFunctions) != 0 || len(r.Dependencies) != 0 {
		t.Errorf("unknown language extracted decls=%v deps=%v", r.KeyFunctions, r.Dependencies)
	}
	if r.Summary == "" {
		t.Error("empty summary for unknown language")
	}
}

func TestAnalyzeFlagsHardcodedSecret(t *testing.T) {
	r := Analyze("cfg.py", `password = "hunter2"`, "python")
	found := false
	for _, s := range r.Suggestions {
		if s == "Ensure sensitive data is properly secured and not hardcoded in source" {
			found = true
		}
	}
	if !found {
		t.Errorf("secret suggestion missing from %v", r.Suggestions)
	}
}

func TestFallbackResult(t *testing.T) {
	r := FallbackResult("big.py", "python")
	if r.ComplexityScore != 0.0 || r.DocumentationQuality != 0.0 {
		t.Errorf("fallback scores = %v %v, want zeros", r.ComplexityScore, r.DocumentationQuality)
	}
	if r.Summary != "Python source file; detailed analysis unavailable" {
		t.Errorf("fallback summary = %q", r.Summary)
	}
	if len(r.KeyFunctions) != 0 || len(r.Dependencies) != 0 {
		t.Error("fallback carries extraction output")
	}
	if len(r.Suggestions) != 4 {
		t.Errorf("fallback suggestions = %d, want 4", len(r.Suggestions))
	}
}
