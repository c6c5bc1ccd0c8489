// =============================================================================
// Workout Tree Tagger - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI.
//
// COBRA CLI STRUCTURE:
//   rootCmd (tagwork)
//   ├── tagCmd (tagwork tag)
//   └── versionCmd (tagwork version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdrohan/tagwork/internal/config"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables per-directory output when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tagwork",
	Short: "Workout Tree Tagger - Tag workout files with their folder's group ID",

	Long: `tagwork rewrites a directory tree of workout files (.zwo, .xml) so a
training-log application can filter workouts by the folder they came from.

Each directory is assigned a hierarchical group identifier (1, 1-1, 1-2, 2,
...) in discovery order. Every workout file gets the identifier appended to
its <name> and an origin label prefixed to its <description>, and is written
into a mirrored <input>_tagged tree whose directory names carry their tags.

Example Usage:
  tagwork tag --input ./workouts            # Tag everything under ./workouts
  tagwork tag --input ./workouts --dry-run  # Show what would be written
  tagwork tag --input ./workouts --report   # Also write an XLSX run report`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Print a line for every directory group assignment",
	)
}
