package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

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
	reportFlagSnapshot int64
	reportFlagJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Aggregate repository-level metrics and quality",
	Long: `Report aggregates per-file analyses into repository-level metrics:
language distribution, average scores, an overall quality score, and a
deterministic architecture assessment. With --snapshot it reports over a
stored snapshot instead of re-analyzing the tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().Int64Var(&reportFlagSnapshot, "snapshot", 0, "Report over a stored snapshot ID instead of a path")
	reportCmd.Flags().BoolVar(&reportFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	var results []analyzer.Result

	if reportFlagSnapshot > 0 {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		snap, err := db.GetSnapshot(reportFlagSnapshot)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		if snap == nil {
			return fmt.Errorf("snapshot %d not found", reportFlagSnapshot)
		}
		results, err = db.LoadResults(snap.ID)
		if err != nil {
			return fmt.Errorf("loading snapshot results: %w", err)
		}
	} else {
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

		r, err := runner.New(cfg.Workers, cfg.Timeout())
		if err != nil {
			return fmt.Errorf("creating runner: %w", err)
		}
		results, err = r.Run(context.Background(), files)
		if err != nil {
			return fmt.Errorf("analyzing files: %w", err)
		}
	}

	rep := report.Build(results)

	if reportFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Println(output.Section("Repository Report"))
	fmt.Println()
	fmt.Println(rep.Render())
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall quality:"),
		output.ScoreBar(rep.QualityScore, 10))
	fmt.Println()
	return nil
}
