// internal/output/manager.go
package output

import (
	"fmt"

	"github.com/qaharvest/qaharvest/internal/config"
	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/utils"
	"github.com/qaharvest/qaharvest/pkg/types"
)

// Manager deduplicates the extracted records and serializes them into the
// configured format plus any optional sinks.
type Manager struct {
	format Format
	cfg    *config.OutputConfig
	logger utils.Logger
}

// NewManager creates an output manager.
func NewManager(format Format, cfg *config.OutputConfig, logger utils.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("output configuration is required")
	}
	return &Manager{
		format: format,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// WriteAll deduplicates and persists both collections, returning kept and
// duplicate counts. QA records dedupe on question text, discussions on title;
// the first occurrence always wins.
func (m *Manager) WriteAll(pairs []types.QAPair, posts []types.DiscussionPost) (*types.WriteSummary, error) {
	uniquePairs, qaDups := DeduplicateQA(pairs)
	m.logger.Infof("removed %d duplicate items from %d total QA items, keeping %d",
		qaDups, len(pairs), len(uniquePairs))
	monitoring.DuplicatesRemoved.WithLabelValues("qa").Add(float64(qaDups))

	uniquePosts, discussionDups := DeduplicateDiscussions(posts)
	m.logger.Infof("removed %d duplicate items from %d total discussion items, keeping %d",
		discussionDups, len(posts), len(uniquePosts))
	monitoring.DuplicatesRemoved.WithLabelValues("discussion").Add(float64(discussionDups))

	qaPath := m.cfg.QAFile + "." + m.format.Ext()
	if err := m.writeFile(qaPath, types.QAPair{}.Columns(), recordsOf(uniquePairs)); err != nil {
		return nil, fmt.Errorf("failed to write QA data: %w", err)
	}

	discussionPath := m.cfg.DiscussionFile + "." + m.format.Ext()
	if err := m.writeFile(discussionPath, types.DiscussionPost{}.Columns(), recordsOf(uniquePosts)); err != nil {
		return nil, fmt.Errorf("failed to write discussion data: %w", err)
	}

	if err := m.writeSinks(uniquePairs, uniquePosts); err != nil {
		return nil, err
	}

	return &types.WriteSummary{
		QAKept:               len(uniquePairs),
		QADuplicates:         qaDups,
		DiscussionKept:       len(uniquePosts),
		DiscussionDuplicates: discussionDups,
		QAPath:               qaPath,
		DiscussionPath:       discussionPath,
	}, nil
}

// writeFile serializes one record collection with the configured format.
func (m *Manager) writeFile(path string, header []string, records []types.Record) error {
	writer, err := NewWriter(m.format, path, header)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := writer.WriteRecord(record); err != nil {
			writer.Close()
			return err
		}
	}
	return writer.Close()
}

// writeSinks feeds the optional SQLite and XLSX outputs when configured.
func (m *Manager) writeSinks(pairs []types.QAPair, posts []types.DiscussionPost) error {
	if m.cfg.SQLite != nil {
		db, err := NewSQLiteWriter(m.cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.ReplaceQA(pairs); err != nil {
			return err
		}
		if err := db.ReplaceDiscussions(posts); err != nil {
			return err
		}
		m.logger.Infof("records mirrored to sqlite database %s", m.cfg.SQLite.Path)
	}

	if m.cfg.Excel != nil {
		if err := WriteWorkbook(m.cfg.Excel.Path, pairs, posts); err != nil {
			return err
		}
		m.logger.Infof("review workbook written to %s", m.cfg.Excel.Path)
	}

	return nil
}
