// internal/extract/transform.go
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/qaharvest/qaharvest/internal/pipeline"
	"github.com/qaharvest/qaharvest/pkg/types"
)

// questionWordPattern matches text containing an interrogative word at a
// word boundary.
var questionWordPattern = regexp.MustCompile(`(?i)(what|how|why|when|where|who|is|are|do|does|can|could|should|would)\b`)

// questionSentencePattern matches the first sentence-like run ending in a
// question mark.
var questionSentencePattern = regexp.MustCompile(`[^.!?]*\?`)

const (
	minTitleLength      = 5
	minContentLength    = 20
	summaryThreshold    = 1000
	maxSummarySentences = 5
)

// DiscussionsToQA converts discussion records into QA records. The title (or
// a question-shaped sentence found in the content) becomes the question; the
// content becomes the answer, summarized to its first few sentences when it
// runs long. Records with too little text are skipped.
func DiscussionsToQA(posts []types.DiscussionPost) []types.QAPair {
	var pairs []types.QAPair

	for _, post := range posts {
		if utf8.RuneCountInString(post.Title) < minTitleLength ||
			utf8.RuneCountInString(post.Content) < minContentLength {
			continue
		}

		question := questionFrom(post.Title, post.Content)

		answer := post.Content
		if utf8.RuneCountInString(answer) > summaryThreshold {
			answer = summarize(answer, maxSummarySentences)
		}

		pairs = append(pairs, types.QAPair{
			Question: question,
			Answer:   answer,
			Source:   post.Source,
		})
	}

	return pairs
}

// firstQuestionSentence returns the first sentence ending with a question
// mark, trimmed, or "" when the text contains none.
func firstQuestionSentence(text string) string {
	return strings.TrimSpace(questionSentencePattern.FindString(text))
}

// summarize keeps the first min(limit, total) sentences joined with single
// spaces, preserving the original sentence terminators.
func summarize(text string, limit int) string {
	sentences := splitSentences(text)
	if len(sentences) > limit {
		sentences = sentences[:limit]
	}
	return strings.Join(sentences, " ")
}

// splitSentences splits after a '.', '!' or '?' followed by whitespace. The
// terminator stays with its sentence; the separating whitespace is dropped.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			j := i + 1
			if j >= len(runes) || !unicode.IsSpace(runes[j]) {
				continue
			}
			sentences = append(sentences, string(runes[start:j]))
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

// fallbackQuestion synthesizes a question referencing the title.
func fallbackQuestion(title string) string {
	return fmt.Sprintf("What information can you provide about %s?", title)
}

// ApplyTransforms runs a configured transform chain over the text fields of
// every record. Source URLs are left untouched. An empty chain is a no-op.
func ApplyTransforms(rules pipeline.TransformList, pairs []types.QAPair, posts []types.DiscussionPost) ([]types.QAPair, []types.DiscussionPost, error) {
	if len(rules) == 0 {
		return pairs, posts, nil
	}

	for i := range pairs {
		question, err := rules.Apply(pairs[i].Question)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to transform question: %w", err)
		}
		answer, err := rules.Apply(pairs[i].Answer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to transform answer: %w", err)
		}
		pairs[i].Question, pairs[i].Answer = question, answer
	}

	for i := range posts {
		title, err := rules.Apply(posts[i].Title)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to transform title: %w", err)
		}
		content, err := rules.Apply(posts[i].Content)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to transform content: %w", err)
		}
		posts[i].Title, posts[i].Content = title, content
	}

	return pairs, posts, nil
}
