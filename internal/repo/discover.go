// Package repo is the file-retrieval collaborator for the analysis
// engine: it walks a local source tree, maps file extensions to
// language tags, and loads file contents. Nothing in here feeds back
// into the engine; the engine only ever sees text and a language tag.
package repo

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceFile is one discovered source unit, content included.
type SourceFile struct {
	// Path is the path relative to the walked root.
	Path string `json:"path"`

	// Name is the base filename.
	Name string `json:"name"`

	// Language is the detected language tag.
	Language string `json:"language"`

	// Size is the content length in bytes.
	Size int64 `json:"size"`

	// Content is the raw file text.
	Content string `json:"-"`
}

// Options controls discovery.
type Options struct {
	// ExcludeDirs are directory names skipped during the walk.
	ExcludeDirs []string

	// MaxFileSize is the largest file loaded, in bytes. Zero means
	// no limit.
	MaxFileSize int64
}

// DiscoverFiles walks root and returns every supported source file,
// sorted by path. Directories in the exclude list and hidden
// directories are skipped; files with unrecognized extensions are
// ignored rather than reported as errors.
func DiscoverFiles(root string, opts Options) ([]SourceFile, error) {
	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, dir := range opts.ExcludeDirs {
		excluded[dir] = true
	}

	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (excluded[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		lang := LanguageForExtension(filepath.Ext(path))
		if lang == "" {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		files = append(files, SourceFile{
			Path:     rel,
			Name:     d.Name(),
			Language: lang,
			Size:     info.Size(),
			Content:  string(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}
