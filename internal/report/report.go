// =============================================================================
// Workout Tree Tagger - Run Report Module
// =============================================================================
//
// This module writes an XLSX report for a completed tagging run: one row per
// workout file attempted, with its group identifier, output location, and
// status. The report gives a reviewable record of which workouts were tagged
// into which group before the tagged tree is imported into the training log.
//
// REPORT LAYOUT:
//
//   | Input File | Group | Output File | Status | Error |
//   |------------|-------|-------------|--------|-------|
//   | .../a.zwo  | 1-2   | .../a.zwo   | OK     |       |
//   | .../b.zwo  |       |             | parse  | ...   |
//
// =============================================================================

package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rdrohan/tagwork/internal/config"
	"github.com/rdrohan/tagwork/internal/walker"
	"github.com/rdrohan/tagwork/pkg/utils"
)

// sheetName is the single worksheet the report is written to.
const sheetName = "Tagging Report"

// Write creates the XLSX run report for summary.
//
// The report directory comes from the configuration, defaulting to the run's
// output root; the file name is expanded from the configured format so
// successive runs never overwrite each other.
//
// RETURNS:
//   - The path of the written report.
//   - An error if the report cannot be written.
func Write(summary *walker.Summary, cfg *config.Config) (string, error) {
	dir := cfg.ReportDir
	if dir == "" {
		dir = summary.OutputRoot
	}
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, utils.GenerateOutputFileName(cfg.ReportNameFormat))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("failed to set up report sheet: %w", err)
	}

	headers := []string{"Input File", "Group", "Output File", "Status", "Error"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to address report cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("failed to write report header: %w", err)
		}
	}

	for i, file := range summary.Files {
		row := i + 2

		status := "OK"
		errText := ""
		if !file.Success {
			status = file.ErrorType
			errText = file.Err.Error()
		}

		values := []interface{}{
			file.InputPath,
			file.GroupID,
			file.OutputPath,
			status,
			errText,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return "", fmt.Errorf("failed to address report cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("failed to write report row: %w", err)
			}
		}
	}

	// Readable default widths for the path columns.
	if err := f.SetColWidth(sheetName, "A", "C", 50); err != nil {
		return "", fmt.Errorf("failed to size report columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	return path, nil
}
