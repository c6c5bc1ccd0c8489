package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	require.NoError(t, EnsureDir(dir))

	// Drop a file in, re-create, and verify nothing was disturbed.
	marker := filepath.Join(dir, "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0644))

	require.NoError(t, EnsureDir(dir))

	content, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestReadFileUTF8ReplacesInvalidBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.zwo")
	require.NoError(t, os.WriteFile(path, []byte("Caf\xe9 ride"), 0644))

	content, err := ReadFileUTF8(path)
	require.NoError(t, err)
	assert.Equal(t, "Caf� ride", content)
}

func TestReadFileUTF8StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.zwo")
	require.NoError(t, os.WriteFile(path, []byte("\ufeff<workout_file/>"), 0644))

	content, err := ReadFileUTF8(path)
	require.NoError(t, err)
	assert.Equal(t, "<workout_file/>", content)
}

func TestReadFileUTF8MissingFile(t *testing.T) {
	_, err := ReadFileUTF8(filepath.Join(t.TempDir(), "nope.zwo"))
	assert.Error(t, err)
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("report_{date}_{uuid}.xlsx")

	assert.True(t, strings.HasPrefix(name, "report_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.NotContains(t, name, "{uuid}")
	assert.NotContains(t, name, "{date}")

	// Two calls never collide.
	assert.NotEqual(t, name, GenerateOutputFileName("report_{date}_{uuid}.xlsx"))
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()

	entries := []ErrorLogEntry{
		{
			Timestamp:    time.Now(),
			FilePath:     "/in/G1/bad.zwo",
			ErrorType:    "parse",
			ErrorMessage: "invalid workout XML",
		},
	}

	path, err := WriteErrorLog(entries, dir)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "/in/G1/bad.zwo")
	assert.Contains(t, string(content), "invalid workout XML")
	assert.Contains(t, string(content), "Total Errors: 1")
}

func TestWriteErrorLogNoEntries(t *testing.T) {
	path, err := WriteErrorLog(nil, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
}
