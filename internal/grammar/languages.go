package grammar

// buildTable constructs the full language table. Pattern order within a
// language is significant: declaration extraction reports matches per
// pattern in this order.
func buildTable() map[string]Grammar {
	t := make(map[string]Grammar)

	add := func(g Grammar) {
		t[g.Language] = g
	}

	add(Grammar{
		Language: "python",
		Declarations: declarations(
			`def\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\([^)]*\):`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(?:\([^)]*\))?:`,
		),
		Imports: patterns(
			`import\s+([a-zA-Z_][a-zA-Z0-9_.]*)`,
			`from\s+([a-zA-Z_][a-zA-Z0-9_.]*)\s+import`,
		),
		CommentStarters: []string{"#", `"""`, "'''"},
		Docstrings: patterns(
			`(?s)""".*?"""`,
			`(?s)'''.*?'''`,
		),
	})

	add(Grammar{
		Language: "javascript",
		Declarations: declarations(
			`function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`const\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`,
			`([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*(?:async\s+)?function\s*\(`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\{`,
		),
		Imports: patterns(
			`import\s+.*?\s+from\s+['"]([^'"]+)['"]`,
			`require\s*\(\s*['"]([^'"]+)['"]\s*\)`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
			`//.*?@param`,
			`//.*?@returns`,
		),
	})

	add(Grammar{
		Language: "typescript",
		Declarations: declarations(
			`function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`const\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`,
			`([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*(?:async\s+)?function\s*\(`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\{`,
		),
		Imports: patterns(
			`import\s+.*?\s+from\s+['"]([^'"]+)['"]`,
			`require\s*\(\s*['"]([^'"]+)['"]\s*\)`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
			`//.*?@param`,
			`//.*?@returns`,
		),
	})

	add(Grammar{
		Language: "java",
		Declarations: declarations(
			`(?:public|private|protected)?\s*(?:static\s+)?(?:final\s+)?(?:abstract\s+)?(?:synchronized\s+)?[a-zA-Z<>\[\]]+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`(?:public|private|protected)?\s*(?:static\s+)?(?:final\s+)?(?:abstract\s+)?class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`import\s+([a-zA-Z_][a-zA-Z0-9_.]*);`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "cpp",
		Declarations: declarations(
			`(?:[a-zA-Z_][a-zA-Z0-9_]*\s+)+([a-zA-Z_][a-zA-Z0-9_]*)\s*\([^)]*\)\s*\{`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`#include\s*[<"]([^>"]+)[>"]`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "csharp",
		Declarations: declarations(
			`(?:public|private|protected|internal)?\s*(?:static\s+)?(?:virtual\s+)?(?:override\s+)?(?:async\s+)?[a-zA-Z<>\[\]]+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`(?:public|private|protected|internal)?\s*(?:static\s+)?(?:abstract\s+)?(?:sealed\s+)?class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`using\s+([a-zA-Z_][a-zA-Z0-9_.]*);`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`///.*`,
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "go",
		Declarations: declarations(
			`func\s+(?:\([^)]*\)\s+)?([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`type\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+struct\s*\{`,
		),
		Imports: patterns(
			`import\s+"([^"]+)"`,
			`(?m)^\s*(?:\w+\s+)?"([^"]+)"\s*$`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`//.*`,
		),
	})

	add(Grammar{
		Language: "rust",
		Declarations: declarations(
			`fn\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`struct\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
			`impl\s+(?:[^{]*\s+)?([a-zA-Z_][a-zA-Z0-9_]*)\s*\{`,
		),
		Imports: patterns(
			`use\s+([a-zA-Z_][a-zA-Z0-9_:]*);`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`///.*`,
			`//!.*`,
		),
	})

	add(Grammar{
		Language: "php",
		Declarations: declarations(
			`function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`use\s+([a-zA-Z_][a-zA-Z0-9_\\]*);`,
			`require_once\s+['"]([^'"]+)['"]`,
		),
		CommentStarters: []string{"//", "#", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "ruby",
		Declarations: declarations(
			`def\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`require\s+['"]([^'"]+)['"]`,
			`require_relative\s+['"]([^'"]+)['"]`,
		),
		CommentStarters: []string{"#"},
		Docstrings: patterns(
			`#.*`,
		),
	})

	add(Grammar{
		Language: "swift",
		Declarations: declarations(
			`func\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
			`struct\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`import\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`///.*`,
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "kotlin",
		Declarations: declarations(
			`fun\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
			`(?:data\s+)?class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
			`object\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`import\s+([a-zA-Z_][a-zA-Z0-9_.]*)`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "scala",
		Declarations: declarations(
			`def\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
			`(?:case\s+)?class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
			`object\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`import\s+([a-zA-Z_][a-zA-Z0-9_.]*)`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`(?s)/\*\*.*?\*/`,
		),
	})

	add(Grammar{
		Language: "dart",
		Declarations: declarations(
			`(?:[a-zA-Z_][a-zA-Z0-9_<>]*\s+)+([a-zA-Z_][a-zA-Z0-9_]*)\s*\([^)]*\)\s*(?:async\s*)?\{`,
			`class\s+([a-zA-Z_][a-zA-Z0-9_]*)`,
		),
		Imports: patterns(
			`import\s+['"]([^'"]+)['"]`,
			`export\s+['"]([^'"]+)['"]`,
		),
		CommentStarters: []string{"//", "/*"},
		Docstrings: patterns(
			`///.*`,
		),
	})

	return t
}
