// internal/output/types.go
package output

import (
	"fmt"

	"github.com/qaharvest/qaharvest/pkg/types"
)

// Format identifies a serialization format for training data.
type Format string

const (
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
	FormatText  Format = "txt"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSONL, FormatCSV, FormatText:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (want jsonl, csv or txt)", name)
	}
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	return string(f)
}

// Writer persists records one at a time in a specific format.
type Writer interface {
	WriteRecord(record types.Record) error
	Close() error
}

// NewWriter creates a writer for the format. The header is used by tabular
// formats and ignored by the rest.
func NewWriter(format Format, filename string, header []string) (Writer, error) {
	switch format {
	case FormatJSONL:
		return NewJSONLWriter(filename)
	case FormatCSV:
		return NewCSVWriter(filename, header)
	case FormatText:
		return NewTextWriter(filename)
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
