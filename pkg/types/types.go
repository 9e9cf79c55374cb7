// pkg/types/types.go
package types

import "strings"

// QAPair is a single question/answer training record extracted from a page.
type QAPair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Source   string `json:"source" yaml:"source"`
}

// DiscussionPost is a forum-style title/content record extracted from a page.
type DiscussionPost struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Source  string `json:"source" yaml:"source"`
}

// Record is the shape shared by all output writers: a fixed column order for
// tabular formats and human-readable labels for plain-text blocks.
type Record interface {
	Columns() []string
	Labels() []string
	Values() []string
}

// Columns returns the CSV/database column order for QA records.
func (p QAPair) Columns() []string {
	return []string{"question", "answer", "source"}
}

// Labels returns the plain-text block labels for QA records.
func (p QAPair) Labels() []string {
	return []string{"Q", "A", "Source"}
}

// Values returns the field values in column order.
func (p QAPair) Values() []string {
	return []string{p.Question, p.Answer, p.Source}
}

// IsQuestion reports whether the question text ends with a question mark.
func (p QAPair) IsQuestion() bool {
	return strings.HasSuffix(p.Question, "?")
}

// Columns returns the CSV/database column order for discussion records.
func (d DiscussionPost) Columns() []string {
	return []string{"title", "content", "source"}
}

// Labels returns the plain-text block labels for discussion records.
func (d DiscussionPost) Labels() []string {
	return []string{"Title", "Content", "Source"}
}

// Values returns the field values in column order.
func (d DiscussionPost) Values() []string {
	return []string{d.Title, d.Content, d.Source}
}

// ValidationReport summarizes how much of the extracted data passes the
// minimum-quality heuristic for language-model training.
type ValidationReport struct {
	Total    int      `json:"total"`
	Suitable int      `json:"suitable"`
	Ratio    float64  `json:"ratio"`
	Passed   bool     `json:"passed"`
	Message  string   `json:"message"`
	Issues   []string `json:"issues,omitempty"`
}

// WriteSummary reports deduplication and persistence results for one run.
type WriteSummary struct {
	QAKept               int    `json:"qa_kept"`
	QADuplicates         int    `json:"qa_duplicates"`
	DiscussionKept       int    `json:"discussion_kept"`
	DiscussionDuplicates int    `json:"discussion_duplicates"`
	QAPath               string `json:"qa_path"`
	DiscussionPath       string `json:"discussion_path"`
}
