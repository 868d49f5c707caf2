package export

import (
	"fmt"

	"github.com/tealeg/xlsx"

	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

// ToExcel writes history entries to an xlsx workbook at outputFilePath.
func ToExcel(entries []model.HistoryEntry, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("History")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Timestamp"
	headerRow.AddCell().Value = "Filename"
	headerRow.AddCell().Value = "Summary"

	for _, entry := range entries {
		row := sheet.AddRow()
		row.AddCell().Value = entry.Timestamp
		row.AddCell().Value = entry.Filename
		row.AddCell().Value = entry.Summary
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
