package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelens/internal/explain"
	"github.com/blackwell-systems/codelens/internal/output"
	"github.com/blackwell-systems/codelens/internal/repo"
)

var (
	explainFlagLanguage string
	explainFlagContext  string
	explainFlagJSON     bool
)

var explainCmd = &cobra.Command{
	Use:   "explain <path>",
	Short: "Explain a code snippet or file",
	Long: `Explain composes a deterministic explanation of a code file: the
concepts it demonstrates, the good practices it shows, and potential
issues worth reviewing. Pass "-" to read the snippet from stdin, in
which case --language is required.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainFlagLanguage, "language", "", "Override language detection")
	explainCmd.Flags().StringVar(&explainFlagContext, "context", "", "Optional context the snippet belongs to")
	explainCmd.Flags().BoolVar(&explainFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	path := args[0]

	var text string
	language := explainFlagLanguage
	if path == "-" {
		if language == "" {
			return fmt.Errorf("--language is required when reading from stdin")
		}
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(content)
	} else {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(content)
		if language == "" {
			language = repo.LanguageForExtension(filepath.Ext(path))
		}
		if language == "" {
			return fmt.Errorf("cannot detect language for %q; use --language", path)
		}
	}

	result := explain.Explain(text, language, explainFlagContext)

	if explainFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(output.Section("Explanation"))
	fmt.Println()
	fmt.Printf("  %s\n", result.Explanation)

	renderBullets("Key Concepts", result.KeyConcepts)
	renderBullets("Best Practices", result.BestPractices)
	renderBullets("Potential Issues", result.PotentialIssues)
	fmt.Println()
	return nil
}

func renderBullets(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(output.Section(title))
	fmt.Println()
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
