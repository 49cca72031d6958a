package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelens/internal/analyzer"
	"github.com/blackwell-systems/codelens/internal/grammar"
	"github.com/blackwell-systems/codelens/internal/output"
	"github.com/blackwell-systems/codelens/internal/repo"
)

var (
	fileFlagLanguage string
	fileFlagJSON     bool
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Show the detailed analysis of a single file",
	Long: `File runs the full analysis pipeline over one source file and shows
everything the engine extracted: declarations with their kinds and lines,
import targets, both scores, suggestions, and the synthesized summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().StringVar(&fileFlagLanguage, "language", "", "Override language detection")
	fileCmd.Flags().BoolVar(&fileFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	text := string(content)

	language := fileFlagLanguage
	if language == "" {
		language = repo.LanguageForExtension(filepath.Ext(path))
	}
	if language == "" {
		return fmt.Errorf("cannot detect language for %q; use --language", path)
	}

	result := analyzer.Analyze(path, text, language)

	if fileFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderFileDetail(result, text, language)
	return nil
}

func renderFileDetail(result analyzer.Result, text, language string) {
	fmt.Println(output.Section(result.FilePath))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Language:"),
		output.StyleValue.Render(result.Language))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Complexity:"),
		output.ScoreBar(result.ComplexityScore, 10))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Documentation:"),
		output.ScoreBar(result.DocumentationQuality, 10))

	decls := analyzer.ExtractDeclarations(text, language)
	if len(decls) > 0 {
		fmt.Println(output.Section("Declarations"))
		fmt.Println()
		tbl := output.NewTable("Name", "Kind", "Line")
		for _, d := range decls {
			kind := d.Kind
			if kind == grammar.KindClass {
				kind = output.StyleWarning.Render(kind)
			}
			tbl.AddRow(d.Name, kind, fmt.Sprintf("%d", d.Line))
		}
		tbl.Print()
	}

	if len(result.Dependencies) > 0 {
		fmt.Println(output.Section("Dependencies"))
		fmt.Println()
		for _, dep := range result.Dependencies {
			fmt.Printf("  %s\n", dep)
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Println(output.Section("Suggestions"))
		fmt.Println()
		for i, s := range result.Suggestions {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
	}

	fmt.Println(output.Section("Summary"))
	fmt.Println()
	fmt.Printf("  %s\n\n", result.Summary)
}
