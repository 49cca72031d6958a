package repo

import "strings"

// extensionLanguages maps file extensions to analysis language tags.
// Only extensions listed here are analyzed; markup and data formats are
// deliberately absent.
var extensionLanguages = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".cpp":   "cpp",
	".cc":    "cpp",
	".h":     "cpp",
	".hpp":   "cpp",
	".c":     "cpp",
	".cs":    "csharp",
	".go":    "go",
	".rs":    "rust",
	".php":   "php",
	".rb":    "ruby",
	".swift": "swift",
	".kt":    "kotlin",
	".kts":   "kotlin",
	".scala": "scala",
	".dart":  "dart",
}

// LanguageForExtension returns the language tag for a file extension,
// or "" when the extension is not analyzed.
func LanguageForExtension(ext string) string {
	return extensionLanguages[strings.ToLower(ext)]
}

// DefaultExcludeDirs are the directory names skipped during discovery.
var DefaultExcludeDirs = []string{
	"node_modules",
	".git",
	"__pycache__",
	".pytest_cache",
	"venv",
	"env",
	"dist",
	"build",
	".next",
	"vendor",
	"target",
}
