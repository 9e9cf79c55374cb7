// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/qaharvest/qaharvest/pkg/types"
)

// TextWriter writes one labeled plain-text block per record, blocks
// separated by a blank line:
//
//	Q: ...
//	A: ...
//	Source: ...
type TextWriter struct {
	file   *os.File
	writer *bufio.Writer
}

// NewTextWriter creates a plain-text block writer.
func NewTextWriter(filename string) (*TextWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &TextWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// WriteRecord appends one labeled block followed by a blank line.
func (w *TextWriter) WriteRecord(record types.Record) error {
	labels := record.Labels()
	values := record.Values()
	for i, label := range labels {
		if _, err := fmt.Fprintf(w.writer, "%s: %s\n", label, values[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.writer)
	return err
}

// Close flushes buffered blocks and closes the file.
func (w *TextWriter) Close() error {
	if w.writer != nil {
		if err := w.writer.Flush(); err != nil {
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
