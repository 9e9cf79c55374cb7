// internal/output/excel_test.go
package output

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.xlsx")

	if err := WriteWorkbook(path, samplePairs(), samplePosts()); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "QA Pairs" || sheets[1] != "Discussions" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	rows, err := f.GetRows("QA Pairs")
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	// Header plus the three sample records (the workbook is fed the already
	// deduplicated list in production; here we pass the raw samples).
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "question" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "How do I reset my password?" {
		t.Errorf("unexpected first record row: %v", rows[1])
	}
}
