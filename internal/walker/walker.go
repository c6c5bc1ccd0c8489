// =============================================================================
// Workout Tree Tagger - Tree Mirror Walker
// =============================================================================
//
// This module drives the tagging run. It walks the input tree top-down,
// assigns a group identifier to every directory through the grouper, patches
// each recognized workout file, and writes the result into a mirrored output
// tree where every directory segment carries its group tag:
//
//   workouts/                  ->  workouts_tagged/
//   workouts/Base/             ->  workouts_tagged/Base_[1]/
//   workouts/Base/Long/        ->  workouts_tagged/Base_[1]/Long_[1-1]/
//   workouts/Intervals/        ->  workouts_tagged/Intervals_[2]/
//
// File names are never changed; only directory names are tagged. Output
// directories are created lazily, so an input directory with no matching
// files produces no output directory but still consumes a sequence number.
//
// Per-file failures (read, parse, write) are reported and skipped; the run
// always attempts every file once. Only a missing input root, a violated
// traversal contract, or a failed directory creation abort the run.
//
// =============================================================================

package walker

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rdrohan/tagwork/internal/config"
	"github.com/rdrohan/tagwork/internal/grouper"
	"github.com/rdrohan/tagwork/internal/workout"
	"github.com/rdrohan/tagwork/pkg/utils"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// FileResult records the outcome for a single workout file.
type FileResult struct {
	// InputPath is the file's path in the input tree.
	InputPath string

	// OutputPath is the computed path in the tagged output tree.
	OutputPath string

	// GroupID is the identifier of the file's owning directory.
	GroupID string

	// Success indicates the file was patched and written (or would have
	// been, in a dry run).
	Success bool

	// ErrorType classifies a failure: "read", "parse", or "write".
	ErrorType string

	// Err is the underlying failure, nil on success.
	Err error
}

// Summary describes a completed run.
type Summary struct {
	InputRoot    string
	OutputRoot   string
	Groups       int
	FilesWritten int
	Files        []FileResult
	Errors       []utils.ErrorLogEntry
	Elapsed      time.Duration
}

// =============================================================================
// WALKER
// =============================================================================

// Walker mirrors an input tree of workout files into a tagged output tree.
type Walker struct {
	cfg *config.Config

	// DryRun performs the full traversal and patching without creating
	// directories or writing files.
	DryRun bool

	// Verbose prints a line for every directory assignment.
	Verbose bool

	// Out receives progress output, ErrOut per-file error reports.
	Out    io.Writer
	ErrOut io.Writer
}

// New creates a Walker with the given configuration.
func New(cfg *config.Config) *Walker {
	return &Walker{
		cfg:    cfg,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

// Run executes one tagging run over inputRoot.
//
// FAILURE MODES:
//   - Empty or missing input root: fatal, nothing is created.
//   - Traversal contract violation (child before parent): fatal.
//   - Output directory creation failure (other than already-exists): fatal.
//   - Per-file read/parse/write failures: reported, skipped, run continues.
func (w *Walker) Run(inputRoot string) (*Summary, error) {
	startTime := time.Now()

	if inputRoot == "" {
		return nil, fmt.Errorf("no input directory selected")
	}

	inputRoot = filepath.Clean(inputRoot)
	info, err := os.Stat(inputRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot read input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", inputRoot)
	}

	outputRoot := filepath.Join(
		filepath.Dir(inputRoot),
		filepath.Base(inputRoot)+w.cfg.OutputSuffix,
	)

	if !w.DryRun {
		if err := utils.EnsureDir(outputRoot); err != nil {
			return nil, err
		}
	}

	summary := &Summary{
		InputRoot:  inputRoot,
		OutputRoot: outputRoot,
	}
	assigner := grouper.New(inputRoot)

	err = filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == inputRoot {
				return walkErr
			}
			// An unreadable subdirectory or file loses its own subtree
			// but never the rest of the run.
			w.reportError(summary, path, "read", walkErr)
			return nil
		}

		if d.IsDir() {
			id, err := assigner.Assign(path)
			if err != nil {
				return err
			}
			if w.Verbose && path != inputRoot {
				fmt.Fprintf(w.Out, "  group [%s] %s\n", id, path)
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if !w.cfg.Recognizes(filepath.Ext(d.Name())) {
			return nil
		}

		return w.processFile(summary, assigner, inputRoot, outputRoot, path)
	})
	if err != nil {
		return nil, err
	}

	summary.Groups = assigner.Count()
	summary.Elapsed = time.Since(startTime)

	return summary, nil
}

// =============================================================================
// PER-FILE PROCESSING
// =============================================================================

// processFile patches one workout file and writes it to the tagged mirror
// path. Only directory creation failures propagate.
func (w *Walker) processFile(summary *Summary, assigner *grouper.Assigner, inputRoot, outputRoot, path string) error {
	dir := filepath.Dir(path)
	groupID, ok := assigner.Lookup(dir)
	if !ok {
		// WalkDir visits a directory before its files; this cannot happen
		// unless the traversal itself is broken.
		return fmt.Errorf("directory %s has no group identifier", dir)
	}

	content, err := utils.ReadFileUTF8(path)
	if err != nil {
		w.reportError(summary, path, "read", err)
		return nil
	}

	patched, err := workout.Patch(content, groupID, originLabel(path))
	if err != nil {
		w.reportError(summary, path, "parse", err)
		return nil
	}

	outputPath, err := w.taggedOutputPath(assigner, inputRoot, outputRoot, path)
	if err != nil {
		return err
	}

	if w.DryRun {
		summary.FilesWritten++
		summary.Files = append(summary.Files, FileResult{
			InputPath:  path,
			OutputPath: outputPath,
			GroupID:    groupID,
			Success:    true,
		})
		return nil
	}

	if err := utils.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(patched), 0644); err != nil {
		w.reportError(summary, path, "write", err)
		return nil
	}

	summary.FilesWritten++
	summary.Files = append(summary.Files, FileResult{
		InputPath:  path,
		OutputPath: outputPath,
		GroupID:    groupID,
		Success:    true,
	})

	return nil
}

// taggedOutputPath mirrors the file's relative path into the output tree,
// tagging every directory segment with that directory's identifier. A file
// directly inside the input root lands in the output root untagged.
func (w *Walker) taggedOutputPath(assigner *grouper.Assigner, inputRoot, outputRoot, path string) (string, error) {
	rel, err := filepath.Rel(inputRoot, path)
	if err != nil {
		return "", fmt.Errorf("cannot relativize %s: %w", path, err)
	}

	segments := strings.Split(filepath.ToSlash(rel), "/")
	outputDir := outputRoot
	inputDir := inputRoot

	for _, segment := range segments[:len(segments)-1] {
		inputDir = filepath.Join(inputDir, segment)
		id, ok := assigner.Lookup(inputDir)
		if !ok {
			return "", fmt.Errorf("directory %s has no group identifier", inputDir)
		}
		outputDir = filepath.Join(outputDir, segment+"_["+id+"]")
	}

	return filepath.Join(outputDir, segments[len(segments)-1]), nil
}

// originLabel builds the description prefix from a file's directory
// ancestry and stem: "File:<parent>/<dir>/<stem>".
func originLabel(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return "File:" + filepath.Base(filepath.Dir(dir)) + "/" + filepath.Base(dir) + "/" + stem
}

// reportError records a per-file failure and prints it to the error stream.
func (w *Walker) reportError(summary *Summary, path, errorType string, err error) {
	fmt.Fprintf(w.ErrOut, "  ✗ %s error: %s: %v\n", errorType, path, err)

	summary.Files = append(summary.Files, FileResult{
		InputPath: path,
		ErrorType: errorType,
		Err:       err,
	})
	summary.Errors = append(summary.Errors, utils.ErrorLogEntry{
		Timestamp:    time.Now(),
		FilePath:     path,
		ErrorType:    errorType,
		ErrorMessage: err.Error(),
	})
}
