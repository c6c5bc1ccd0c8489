// =============================================================================
// Workout Tree Tagger - Main Entry Point
// =============================================================================
//
// tagwork batch-rewrites a directory tree of workout files (.zwo/.xml),
// injecting a hierarchical group identifier into each file's <name> and
// <description>, and mirrors the tree into a sibling <input>_tagged directory
// where every folder name carries its group tag. Training-log applications
// that only show a flat workout list can then filter by originating folder.
//
// USAGE:
//   tagwork tag --input ./workouts    - Tag all workout files under ./workouts
//   tagwork version                   - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core logic (grouper, workout patcher, walker, report)
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/rdrohan/tagwork/cmd"
)

func main() {
	cmd.Execute()
}
