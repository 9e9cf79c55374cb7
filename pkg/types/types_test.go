// pkg/types/types_test.go
package types

import (
	"reflect"
	"testing"
)

func TestQAPairIsQuestion(t *testing.T) {
	tests := []struct {
		question string
		expected bool
	}{
		{"How does this work?", true},
		{"A plain statement", false},
		{"?", true},
		{"", false},
	}

	for _, tt := range tests {
		p := QAPair{Question: tt.question}
		if got := p.IsQuestion(); got != tt.expected {
			t.Errorf("IsQuestion(%q) = %v, want %v", tt.question, got, tt.expected)
		}
	}
}

func TestRecordShapes(t *testing.T) {
	pair := QAPair{Question: "q?", Answer: "a", Source: "s"}
	post := DiscussionPost{Title: "t", Content: "c", Source: "s"}

	for _, record := range []Record{pair, post} {
		columns := record.Columns()
		labels := record.Labels()
		values := record.Values()
		if len(columns) != len(labels) || len(labels) != len(values) {
			t.Errorf("mismatched shape for %T: %d columns, %d labels, %d values",
				record, len(columns), len(labels), len(values))
		}
	}

	if got := pair.Values(); !reflect.DeepEqual(got, []string{"q?", "a", "s"}) {
		t.Errorf("unexpected QA values: %v", got)
	}
	if got := post.Columns(); !reflect.DeepEqual(got, []string{"title", "content", "source"}) {
		t.Errorf("unexpected discussion columns: %v", got)
	}
}
