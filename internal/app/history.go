package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelens/internal/config"
	"github.com/blackwell-systems/codelens/internal/output"
	"github.com/blackwell-systems/codelens/internal/store"
)

var historyFlagJSON bool

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List and inspect stored analysis snapshots",
	Long: `History lists the snapshots saved with 'analyze --save'. Pass a
snapshot ID to show the per-file results stored under it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid snapshot ID %q", args[0])
		}
		return showSnapshot(db, id)
	}

	snapshots, err := db.ListSnapshots()
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}

	if historyFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots)
	}

	if len(snapshots) == 0 {
		fmt.Println(output.StyleMuted.Render("No snapshots stored. Run 'codelens analyze --save' first."))
		return nil
	}

	fmt.Println(output.Section("Snapshots"))
	fmt.Println()
	tbl := output.NewTable("ID", "Taken", "Root", "Files", "Quality")
	for _, s := range snapshots {
		tbl.AddRow(
			fmt.Sprintf("%d", s.ID),
			s.TakenAt.Format(time.DateTime),
			s.Root,
			fmt.Sprintf("%d", s.TotalFiles),
			output.FormatScore(s.QualityScore),
		)
	}
	tbl.Print()
	return nil
}

func showSnapshot(db *store.DB, id int64) error {
	snap, err := db.GetSnapshot(id)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if snap == nil {
		return fmt.Errorf("snapshot %d not found", id)
	}

	results, err := db.LoadResults(snap.ID)
	if err != nil {
		return fmt.Errorf("loading snapshot results: %w", err)
	}

	if historyFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Println(output.Section(fmt.Sprintf("Snapshot %d: %s", snap.ID, snap.Root)))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Taken:"),
		output.StyleValue.Render(snap.TakenAt.Format(time.DateTime)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Run ID:"),
		output.StyleValue.Render(snap.RunID))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Quality:"),
		output.ScoreBar(snap.QualityScore, 10))
	fmt.Println()

	tbl := output.NewTable("File", "Language", "Complexity", "Docs")
	for _, r := range results {
		tbl.AddRow(
			r.FilePath,
			r.Language,
			output.FormatComplexity(r.ComplexityScore),
			output.FormatScore(r.DocumentationQuality),
		)
	}
	tbl.Print()
	return nil
}
