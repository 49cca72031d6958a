package runner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/blackwell-systems/codelens/internal/repo"
)

func sourceFile(path, content string) repo.SourceFile {
	return repo.SourceFile{
		Path:     path,
		Name:     path,
		Language: "python",
		Size:     int64(len(content)),
		Content:  content,
	}
}

func TestRunPreservesInputOrder(t *testing.T) {
	r, err := New(4, 0)
	if err != nil {
		t.Fatal(err)
	}

	files := make([]repo.SourceFile, 20)
	for i := range files {
		files[i] = sourceFile(fmt.Sprintf("f%02d.py", i), fmt.Sprintf("def fn%d():\n    pass\n", i))
	}

	results, err := r.Run(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i, res := range results {
		if res.FilePath != files[i].Path {
			t.Errorf("result %d is %q, want %q", i, res.FilePath, files[i].Path)
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	r, err := New(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	results, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from empty input", len(results))
	}
}

func TestRunCancelledContext(t *testing.T) {
	r, err := New(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx, []repo.SourceFile{sourceFile("a.py", "x = 1")})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestCacheReturnsSameResult(t *testing.T) {
	r, err := New(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	f := sourceFile("a.py", "def go():\n    pass")

	first := r.analyzeOne(context.Background(), f)
	if _, ok := r.cache.Get(cacheKey(f)); !ok {
		t.Fatal("result not cached after first analysis")
	}
	second := r.analyzeOne(context.Background(), f)
	if first.Summary != second.Summary || first.ComplexityScore != second.ComplexityScore {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestCacheKeySensitivity(t *testing.T) {
	base := sourceFile("a.py", "x = 1")

	changedContent := base
	changedContent.Content = "x = 2"
	if cacheKey(base) == cacheKey(changedContent) {
		t.Error("content change did not change the key")
	}

	changedPath := base
	changedPath.Path = "b.py"
	if cacheKey(base) == cacheKey(changedPath) {
		t.Error("path change did not change the key")
	}

	changedLang := base
	changedLang.Language = "ruby"
	if cacheKey(base) == cacheKey(changedLang) {
		t.Error("language change did not change the key")
	}
}

func TestAnalyzeWithoutTimeoutRunsInline(t *testing.T) {
	r, err := New(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	res := r.analyzeWithTimeout(context.Background(), sourceFile("a.py", "def go():\n    pass"))
	if len(res.KeyFunctions) != 1 || res.KeyFunctions[0] != "go" {
		t.Errorf("inline analysis result = %+v", res)
	}
}

func TestGenerousTimeoutStillCompletes(t *testing.T) {
	r, err := New(1, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	res := r.analyzeWithTimeout(context.Background(), sourceFile("a.py", "def go():\n    pass"))
	if res.Summary == "Python source file; detailed analysis unavailable" {
		t.Error("watchdog fired on trivial input")
	}
}
