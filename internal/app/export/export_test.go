package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

func TestToExcel(t *testing.T) {
	entries := []model.HistoryEntry{
		{Timestamp: "20260102_000000", Filename: "20260102_000000_standup.mp3", Summary: "Daily standup."},
		{Timestamp: "20260101_000000", Filename: "20260101_000000_planning.wav", Summary: "Sprint planning."},
	}

	out := filepath.Join(t.TempDir(), "history.xlsx")
	require.NoError(t, ToExcel(entries, out))

	file, err := xlsx.OpenFile(out)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 3) // header + 2 entries

	assert.Equal(t, "Timestamp", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "20260102_000000", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "Sprint planning.", sheet.Rows[2].Cells[2].Value)
}

func TestToExcelEmptyHistory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "history.xlsx")
	require.NoError(t, ToExcel(nil, out))

	file, err := xlsx.OpenFile(out)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
}
