// =============================================================================
// Workout Tree Tagger - Tag Command
// =============================================================================
//
// This file defines the 'tag' command, which runs the tagging pipeline.
//
// COMMAND USAGE:
//   tagwork tag --input <dir> [flags]
//
// FLAGS:
//   --input    : Root directory of workout files to tag (required)
//   --dry-run  : Traverse and patch without writing any output
//   --report   : Write an XLSX run report into the output tree
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Validate the input root (absence is fatal, exit non-zero)
//   3. Walk the tree top-down, assigning group IDs and patching files
//   4. Write the tagged mirror tree
//   5. Print the run summary; write error log / report as configured
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rdrohan/tagwork/internal/config"
	"github.com/rdrohan/tagwork/internal/report"
	"github.com/rdrohan/tagwork/internal/walker"
	"github.com/rdrohan/tagwork/pkg/utils"
)

// inputDir is the root directory of workout files to process.
var inputDir string

// dryRun traverses and patches without writing output files.
var dryRun bool

// writeReport enables the XLSX run report.
var writeReport bool

// tagCmd represents the 'tag' command.
var tagCmd = &cobra.Command{
	Use:   "tag [directory]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Tag workout files with their folder's group identifier",
	Long: `The tag command walks the input directory top-down, assigns every folder a
hierarchical group identifier, rewrites each workout file's <name> and
<description>, and mirrors the tree into a sibling <input>_tagged directory.

Per-file errors (unreadable or malformed files) are reported and skipped;
they never abort the run. The command fails before any I/O if no input
directory is given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runTag(args)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringVarP(
		&inputDir,
		"input",
		"i",
		"",
		"Root directory of workout files to tag",
	)

	tagCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Traverse and patch without writing output files",
	)

	tagCmd.Flags().BoolVar(
		&writeReport,
		"report",
		false,
		"Write an XLSX run report into the output tree",
	)
}

// runTag orchestrates one tagging run.
func runTag(args []string) error {
	// The input root may be given positionally or via --input.
	if inputDir == "" && len(args) > 0 {
		inputDir = args[0]
	}
	if inputDir == "" {
		return fmt.Errorf("no input directory selected (use --input)")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	fmt.Println("=== Workout Tree Tagger ===")
	if dryRun {
		fmt.Println("Dry run: no files will be written.")
	}
	fmt.Printf("Tagging %s\n", inputDir)

	w := walker.New(cfg)
	w.DryRun = dryRun
	w.Verbose = verbose

	summary, err := w.Run(inputDir)
	if err != nil {
		return err
	}

	printSummary(summary)

	if !dryRun && cfg.WriteErrorLog && len(summary.Errors) > 0 {
		logPath, err := utils.WriteErrorLog(summary.Errors, summary.OutputRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write error log: %v\n", err)
		} else {
			fmt.Printf("Errors logged to %s\n", logPath)
		}
	}

	if writeReport && !dryRun {
		reportPath, err := report.Write(summary, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write report: %v\n", err)
		} else {
			fmt.Printf("Report written to %s\n", reportPath)
		}
	}

	return nil
}

// printSummary prints the run summary in the style of the original tool's
// closing line, with per-file detail when something failed.
func printSummary(summary *walker.Summary) {
	failed := len(summary.Errors)

	fmt.Println("\n=== Tagging Complete ===")
	fmt.Printf("Groups:        %d\n", summary.Groups)
	if failed > 0 {
		color.Red("Failed:        %d", failed)
	}
	if summary.FilesWritten > 0 {
		color.Green("Files written: %d", summary.FilesWritten)
	} else {
		fmt.Printf("Files written: %d\n", summary.FilesWritten)
	}
	fmt.Printf("Output tree:   %s\n", summary.OutputRoot)
	fmt.Printf("Time elapsed:  %s\n", summary.Elapsed)
}
