// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/qaharvest/qaharvest/pkg/types"
)

// CSVWriter writes records as rows with a fixed column order.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a CSV writer and emits the header row immediately.
func NewCSVWriter(filename string, header []string) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &CSVWriter{
		file:   file,
		writer: writer,
	}, nil
}

// WriteRecord appends one record as a row in column order.
func (w *CSVWriter) WriteRecord(record types.Record) error {
	return w.writer.Write(record.Values())
}

// Close flushes buffered rows and closes the file.
func (w *CSVWriter) Close() error {
	if w.writer != nil {
		w.writer.Flush()
		if err := w.writer.Error(); err != nil {
			w.file.Close()
			return err
		}
		w.writer = nil
	}
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
