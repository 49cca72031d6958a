package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelens/internal/analyzer"
	"github.com/blackwell-systems/codelens/internal/config"
	"github.com/blackwell-systems/codelens/internal/output"
	"github.com/blackwell-systems/codelens/internal/repo"
	"github.com/blackwell-systems/codelens/internal/report"
	"github.com/blackwell-systems/codelens/internal/runner"
	"github.com/blackwell-systems/codelens/internal/store"
)

var (
	analyzeFlagMinComplexity float64
	analyzeFlagJSON          bool
	analyzeFlagSort          string
	analyzeFlagSave          bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a source tree and score every file",
	Long: `Analyze walks a source tree, detects the language of every supported
file, and runs the full analysis pipeline over each one in parallel:
declarations, imports, complexity score, documentation score, suggestions,
and a summary. Results can be stored as a snapshot for later comparison.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeFlagMinComplexity, "min-complexity", 0, "Only show files with complexity >= this value")
	analyzeCmd.Flags().BoolVar(&analyzeFlagJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().StringVar(&analyzeFlagSort, "sort", "path", "Sort by: path, complexity, docs")
	analyzeCmd.Flags().BoolVar(&analyzeFlagSave, "save", false, "Store the results as a snapshot")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	files, err := repo.DiscoverFiles(root, repo.Options{
		ExcludeDirs: cfg.ExcludeDirs,
		MaxFileSize: cfg.MaxFileSize,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		fmt.Println(output.StyleMuted.Render("No supported source files found."))
		return nil
	}

	r, err := runner.New(cfg.Workers, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	results, err := r.Run(context.Background(), files)
	if err != nil {
		return fmt.Errorf("analyzing files: %w", err)
	}

	shown := make([]analyzer.Result, 0, len(results))
	for _, res := range results {
		if res.ComplexityScore >= analyzeFlagMinComplexity {
			shown = append(shown, res)
		}
	}
	sortAnalyses(shown, analyzeFlagSort)

	if analyzeFlagSave {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		id, err := db.SaveSnapshot(root, appVersion, report.QualityScore(results), results)
		if err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		fmt.Println(output.StyleMuted.Render(fmt.Sprintf("Saved snapshot %d.", id)))
	}

	if analyzeFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(shown)
	}

	renderAnalyzeTable(shown)
	renderAnalyzeSummary(results)
	return nil
}

func sortAnalyses(results []analyzer.Result, sortBy string) {
	sort.SliceStable(results, func(i, j int) bool {
		switch sortBy {
		case "complexity":
			return results[i].ComplexityScore > results[j].ComplexityScore
		case "docs":
			return results[i].DocumentationQuality > results[j].DocumentationQuality
		default: // "path"
			return strings.ToLower(results[i].FilePath) < strings.ToLower(results[j].FilePath)
		}
	})
}

func renderAnalyzeTable(results []analyzer.Result) {
	fmt.Println(output.Section("File Analysis"))
	fmt.Println()

	tbl := output.NewTable("File", "Language", "Complexity", "Docs", "Decls", "Imports")
	for _, r := range results {
		tbl.AddRow(
			r.FilePath,
			r.Language,
			output.FormatComplexity(r.ComplexityScore),
			output.FormatScore(r.DocumentationQuality),
			fmt.Sprintf("%d", len(r.KeyFunctions)),
			fmt.Sprintf("%d", len(r.Dependencies)),
		)
	}
	tbl.Print()
}

func renderAnalyzeSummary(results []analyzer.Result) {
	rep := report.Build(results)

	fmt.Println(output.Section("Summary"))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Files analyzed:"),
		output.StyleValue.Render(fmt.Sprintf("%d", rep.TotalFiles)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Primary language:"),
		output.StyleValue.Render(rep.PrimaryLanguage))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg complexity:"),
		output.FormatComplexity(rep.AvgComplexity))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg documentation:"),
		output.FormatScore(rep.AvgDocScore))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall quality:"),
		output.ScoreBar(rep.QualityScore, 10))
	fmt.Println()
}
