package summary

import "strings"

// fileTypeIndicator pairs a filename keyword with its description.
// Order matters: the first keyword found in the path wins.
type fileTypeIndicator struct {
	keyword     string
	description string
}

var fileTypeIndicators = []fileTypeIndicator{
	{"test", "Unit test file"},
	{"config", "Configuration module"},
	{"main", "Main application entry point"},
	{"app", "Application core module"},
	{"util", "Utility helper module"},
	{"helper", "Helper function collection"},
	{"model", "Data model definition"},
	{"service", "Service layer component"},
	{"controller", "Request handler module"},
	{"api", "API endpoint definition"},
	{"db", "Database interaction layer"},
	{"auth", "Authentication module"},
}

// Classify determines the type and purpose of a code file from its path
// and, failing that, from content idioms. The generic fallback is
// "Source code module".
func Classify(path, text string) string {
	filename := strings.ToLower(path)
	for _, ind := range fileTypeIndicators {
		if strings.Contains(filename, ind.keyword) {
			return ind.description
		}
	}

	content := strings.ToLower(text)
	switch {
	case strings.Contains(content, "class") &&
		(strings.Contains(content, "__init__") || strings.Contains(content, "constructor")):
		return "Object-oriented class definition"
	case strings.Contains(content, "def main") || strings.Contains(content, "if __name__"):
		return "Executable script with main entry point"
	case strings.Contains(content, "import") && strings.Contains(content, "def"):
		return "Functional module with utilities"
	case strings.Contains(content, "export") || strings.Contains(content, "module.exports"):
		return "Modular JavaScript component"
	case strings.Contains(content, "interface") || strings.Contains(content, "abstract"):
		return "Interface or abstract definition"
	}

	return "Source code module"
}
