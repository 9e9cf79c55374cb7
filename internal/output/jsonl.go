// internal/output/jsonl.go
package output

import (
	"encoding/json"
	"os"

	"github.com/qaharvest/qaharvest/pkg/types"
)

// JSONLWriter writes one compact JSON object per line.
type JSONLWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONLWriter creates a JSON-lines writer, truncating any existing file.
func NewJSONLWriter(filename string) (*JSONLWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &JSONLWriter{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

// WriteRecord appends one record as a JSON line.
func (w *JSONLWriter) WriteRecord(record types.Record) error {
	return w.encoder.Encode(record)
}

// Close closes the underlying file.
func (w *JSONLWriter) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
