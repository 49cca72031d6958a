package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')")
	writeFile(t, root, "lib/util.go", "package util")
	writeFile(t, root, "README.md", "# readme")
	writeFile(t, root, "node_modules/dep/index.js", "module.exports = 1")
	writeFile(t, root, ".git/config", "[core]")

	files, err := DiscoverFiles(root, Options{ExcludeDirs: DefaultExcludeDirs})
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files: %+v", len(files), files)
	}
	if files[0].Path != filepath.Join("lib", "util.go") || files[0].Language != "go" {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[1].Path != "main.py" || files[1].Language != "python" {
		t.Errorf("files[1] = %+v", files[1])
	}
	if files[1].Content != "print('hi')" || files[1].Size != int64(len("print('hi')")) {
		t.Errorf("content not loaded: %+v", files[1])
	}
}

func TestDiscoverFilesMaxSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.py", "x = 1")
	writeFile(t, root, "big.py", "x = 1\n"+string(make([]byte, 100)))

	files, err := DiscoverFiles(root, Options{MaxFileSize: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Path != "small.py" {
		t.Errorf("files = %+v", files)
	}
}

func TestDiscoverFilesEmptyTree(t *testing.T) {
	files, err := DiscoverFiles(t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files from empty tree", len(files))
	}
}

func TestLanguageForExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want string
	}{
		{".py", "python"},
		{".js", "javascript"},
		{".ts", "typescript"},
		{".go", "go"},
		{".rs", "rust"},
		{".kt", "kotlin"},
		{".md", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := LanguageForExtension(c.ext); got != c.want {
			t.Errorf("LanguageForExtension(%q) = %q, want %q", c.ext, got, c.want)
		}
	}
}
