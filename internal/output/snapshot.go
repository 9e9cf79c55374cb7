// internal/output/snapshot.go
package output

import (
	"encoding/json"
	"os"

	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/utils"
)

// Snapshotter periodically dumps the full accumulated record list to a JSONL
// side file so an interrupted extraction does not lose everything. Each dump
// overwrites the previous one; this is a durability aid, not a checkpoint.
type Snapshotter[T any] struct {
	path     string
	interval int
	logger   utils.Logger
}

// NewSnapshotter creates a snapshotter writing to path every interval records
// processed. A nil Snapshotter is valid and does nothing.
func NewSnapshotter[T any](path string, interval int, logger utils.Logger) *Snapshotter[T] {
	return &Snapshotter[T]{
		path:     path,
		interval: interval,
		logger:   logger,
	}
}

// MaybeWrite dumps the records when processed is a multiple of the interval.
// Snapshot failures are logged and swallowed; they never fail a run.
func (s *Snapshotter[T]) MaybeWrite(processed int, records []T) {
	if s == nil || s.interval <= 0 || processed%s.interval != 0 {
		return
	}
	if err := s.Write(records); err != nil {
		s.logger.Warnf("failed to write snapshot %s: %v", s.path, err)
		return
	}
	s.logger.Infof("progress snapshot: %d records after %d URLs", len(records), processed)
}

// Write replaces the snapshot file with the full record list as JSON lines.
func (s *Snapshotter[T]) Write(records []T) error {
	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}

	monitoring.SnapshotsWritten.Inc()
	return nil
}
