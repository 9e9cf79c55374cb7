// internal/output/excel.go
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/qaharvest/qaharvest/pkg/types"
)

// WriteWorkbook writes the deduplicated records into an XLSX workbook for
// manual review, one sheet per record kind with a header row.
func WriteWorkbook(path string, pairs []types.QAPair, posts []types.DiscussionPost) error {
	f := excelize.NewFile()
	defer f.Close()

	const qaSheet = "QA Pairs"
	if err := f.SetSheetName("Sheet1", qaSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := writeSheet(f, qaSheet, recordsOf(pairs), types.QAPair{}.Columns()); err != nil {
		return err
	}

	const discussionSheet = "Discussions"
	if _, err := f.NewSheet(discussionSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writeSheet(f, discussionSheet, recordsOf(posts), types.DiscussionPost{}.Columns()); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSheet fills one sheet with a header row and one row per record.
func writeSheet(f *excelize.File, sheet string, records []types.Record, header []string) error {
	headerRow := make([]interface{}, len(header))
	for i, name := range header {
		headerRow[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header on %s: %w", sheet, err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := record.Values()
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+2, sheet, err)
		}
	}

	return nil
}
