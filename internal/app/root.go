// Package app contains the Cobra command tree for codelens.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codelens/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "codelens",
	Short: "Deterministic source code analysis and scoring",
	Long: `codelens analyzes source files with language-aware pattern grammars:
it extracts declarations and imports, scores complexity and documentation
quality, derives improvement suggestions, and composes natural-language
summaries. Everything runs locally and deterministically, with no network
calls.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.AutoDetect()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("codelens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Analyze a source tree and score every file")
		fmt.Println("  file      Show the detailed analysis of a single file")
		fmt.Println("  explain   Explain a code snippet or file")
		fmt.Println("  report    Aggregate repository-level metrics and quality")
		fmt.Println("  history   List and inspect stored analysis snapshots")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/codelens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
