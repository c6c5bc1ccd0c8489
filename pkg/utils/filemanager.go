// =============================================================================
// Workout Tree Tagger - File Utilities
// =============================================================================
//
// This module provides the file-level helpers used by the tagger:
//   - Idempotent directory creation
//   - Tolerant UTF-8 file reading
//   - Placeholder-based report file naming
//   - Plain-text error log generation
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates the directory path if it does not already exist.
// An existing directory is success; re-running the tagger into a
// pre-existing output tree must not fail.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file or directory exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// =============================================================================
// FILE READING
// =============================================================================

// ReadFileUTF8 reads a file as UTF-8 text, replacing any byte sequence that
// is not valid UTF-8 with the Unicode replacement character. Workout files
// exported from other tools occasionally carry stray Windows-1252 bytes;
// the read itself never fails on encoding.
func ReadFileUTF8(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	// Some exporters prepend a BOM; the XML decoder will not accept it.
	text := strings.TrimPrefix(string(data), "\ufeff")
	return strings.ToValidUTF8(text, "\ufffd"), nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands a file name format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//     Placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//     {date}      - Current date (YYYYMMDD)
//     {time}      - Current time (HHMMSS)
//
// EXAMPLE:
//
//	format: "tagging_report_{timestamp}_{uuid}.xlsx"
//	output: "tagging_report_20250115_143022_a1b2c3d4-....xlsx"
func GenerateOutputFileName(format string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	return result
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// ErrorLogEntry represents a single per-file failure during a run.
type ErrorLogEntry struct {
	Timestamp    time.Time
	FilePath     string
	ErrorType    string
	ErrorMessage string
}

// WriteErrorLog writes error entries to a timestamped log file in the
// given directory.
//
// RETURNS:
//   - The path to the error log file, or "" if there were no entries.
//   - An error if writing fails.
func WriteErrorLog(entries []ErrorLogEntry, dir string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	logName := GenerateOutputFileName("tagging_errors_{timestamp}.txt")
	logPath := filepath.Join(dir, logName)

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	header := fmt.Sprintf("Workout Tree Tagger - Error Log\n"+
		"Generated: %s\n"+
		"Total Errors: %d\n"+
		"================================================================================\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))
	writer.WriteString(header)

	for i, entry := range entries {
		writer.WriteString(fmt.Sprintf("Error #%d\n"+
			"  Timestamp:  %s\n"+
			"  File:       %s\n"+
			"  Error Type: %s\n"+
			"  Message:    %s\n\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.FilePath,
			entry.ErrorType,
			entry.ErrorMessage))
	}

	writer.WriteString("================================================================================\n" +
		"End of Error Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush error log: %w", err)
	}

	return logPath, nil
}
