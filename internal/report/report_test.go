package report

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rdrohan/tagwork/internal/config"
	"github.com/rdrohan/tagwork/internal/walker"
)

func TestWriteReport(t *testing.T) {
	outputRoot := t.TempDir()

	summary := &walker.Summary{
		OutputRoot:   outputRoot,
		Groups:       2,
		FilesWritten: 1,
		Files: []walker.FileResult{
			{
				InputPath:  "/in/G1/a.zwo",
				OutputPath: filepath.Join(outputRoot, "G1_[1]", "a.zwo"),
				GroupID:    "1",
				Success:    true,
			},
			{
				InputPath: "/in/G1/bad.zwo",
				ErrorType: "parse",
				Err:       errors.New("invalid workout XML"),
			},
		},
	}

	path, err := Write(summary, config.Default())
	require.NoError(t, err)
	assert.Equal(t, outputRoot, filepath.Dir(path))
	assert.Equal(t, ".xlsx", filepath.Ext(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tagging Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Input File", "Group", "Output File", "Status", "Error"}, rows[0])

	assert.Equal(t, "/in/G1/a.zwo", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "OK", rows[1][3])

	assert.Equal(t, "/in/G1/bad.zwo", rows[2][0])
	assert.Equal(t, "parse", rows[2][3])
	assert.Equal(t, "invalid workout XML", rows[2][4])
}

func TestWriteReportToConfiguredDir(t *testing.T) {
	cfg := config.Default()
	cfg.ReportDir = filepath.Join(t.TempDir(), "reports")

	summary := &walker.Summary{OutputRoot: t.TempDir()}

	path, err := Write(summary, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.ReportDir, filepath.Dir(path))
}
