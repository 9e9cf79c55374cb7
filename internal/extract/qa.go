// internal/extract/qa.go
package extract

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/output"
	"github.com/qaharvest/qaharvest/internal/pipeline"
	"github.com/qaharvest/qaharvest/internal/scraper"
	"github.com/qaharvest/qaharvest/internal/utils"
	"github.com/qaharvest/qaharvest/pkg/types"
)

const (
	faqContainerSelector = ".faq, .faqs, .faq-item, .faq-section, .accordion"
	faqQuestionSelector  = ".question, .faq-question, h3, h4, dt"
	faqAnswerSelector    = ".answer, .faq-answer, p, dd"
	textBlockSelector    = "h1, h2, h3, p, li"
	threadSelector       = ".message-list, .thread, .topic, .discussion"
	firstPostSelector    = ".first-post, .topic-post, .thread-question"
	postTitleSelector    = "h1, h2, h3, .post-title"
	postContentSelector  = ".post-content, .content, .post-body"
	solutionSelector     = ".solution, .accepted-answer, .best-answer"

	// Answers at or below this many characters are treated as navigation noise.
	minAnswerLength = 20
)

// QAExtractor pulls question/answer records out of pages using three
// heuristics in sequence: structured FAQ blocks, a heading/paragraph scan
// when no FAQ markup exists, and discussion threads with an accepted answer.
type QAExtractor struct {
	client   *scraper.Client
	logger   utils.Logger
	snapshot *output.Snapshotter[types.QAPair]
}

// NewQAExtractor creates a QA extractor. snapshot may be nil.
func NewQAExtractor(client *scraper.Client, logger utils.Logger, snapshot *output.Snapshotter[types.QAPair]) *QAExtractor {
	return &QAExtractor{
		client:   client,
		logger:   logger,
		snapshot: snapshot,
	}
}

// Extract processes the URLs sequentially and returns every QA record found.
// Fetch failures are logged and the URL is skipped. The full accumulated
// list is snapshotted periodically.
func (e *QAExtractor) Extract(ctx context.Context, urls []string) []types.QAPair {
	var pairs []types.QAPair

	for i, pageURL := range urls {
		e.logger.Infof("extracting Q&A from URL %d/%d: %s", i+1, len(urls), pageURL)

		doc, err := e.client.FetchDocument(ctx, pageURL)
		if err != nil {
			e.logger.Warnf("error processing %s: %v", pageURL, err)
			monitoring.FetchErrors.WithLabelValues("qa").Inc()
		} else {
			monitoring.PagesFetched.WithLabelValues("qa").Inc()
			found := extractQAFromDocument(doc, pageURL)
			monitoring.RecordsExtracted.WithLabelValues("qa").Add(float64(len(found)))
			pairs = append(pairs, found...)
		}

		e.snapshot.MaybeWrite(i+1, pairs)
	}

	return pairs
}

// extractQAFromDocument applies the heuristics to one parsed page. FAQ
// pairing and the text scan are alternatives; the thread heuristic always
// runs, so overlapping records are possible until format-time deduplication.
func extractQAFromDocument(doc *goquery.Document, pageURL string) []types.QAPair {
	var pairs []types.QAPair

	faqSections := doc.Find(faqContainerSelector)
	if faqSections.Length() > 0 {
		faqSections.Each(func(_ int, section *goquery.Selection) {
			pairs = append(pairs, pairFAQSection(section, pageURL)...)
		})
	} else {
		pairs = append(pairs, scanTextBlocks(doc, pageURL)...)
	}

	pairs = append(pairs, extractThreads(doc, pageURL)...)
	return pairs
}

// pairFAQSection zips question elements against answer elements by position.
// Pairing truncates to the shorter list; interleaved markup can mis-pair,
// which matches the upstream behavior this tool reproduces.
func pairFAQSection(section *goquery.Selection, pageURL string) []types.QAPair {
	questions := section.Find(faqQuestionSelector)
	answers := section.Find(faqAnswerSelector)

	n := questions.Length()
	if answers.Length() < n {
		n = answers.Length()
	}

	var pairs []types.QAPair
	for i := 0; i < n; i++ {
		question := pipeline.Normalize(questions.Eq(i).Text())
		answer := pipeline.Normalize(answers.Eq(i).Text())
		if question == "" || answer == "" || utf8.RuneCountInString(answer) <= minAnswerLength {
			continue
		}
		if !strings.HasSuffix(question, "?") {
			question += "?"
		}
		pairs = append(pairs, types.QAPair{
			Question: question,
			Answer:   answer,
			Source:   pageURL,
		})
	}
	return pairs
}

// scanTextBlocks walks headings, paragraphs and list items in document
// order. A block that matches the interrogative vocabulary and ends with a
// question mark opens a question; the next sufficiently long block closes it
// as the answer, consuming the question.
func scanTextBlocks(doc *goquery.Document, pageURL string) []types.QAPair {
	var pairs []types.QAPair
	currentQuestion := ""

	doc.Find(textBlockSelector).Each(func(_ int, block *goquery.Selection) {
		text := pipeline.Normalize(block.Text())
		switch {
		case questionWordPattern.MatchString(text) && strings.HasSuffix(text, "?"):
			currentQuestion = text
		case currentQuestion != "" && utf8.RuneCountInString(text) > minAnswerLength:
			pairs = append(pairs, types.QAPair{
				Question: currentQuestion,
				Answer:   text,
				Source:   pageURL,
			})
			currentQuestion = ""
		}
	})

	return pairs
}

// extractThreads treats discussion threads as QA sources: the first post
// supplies the question, an accepted-solution element supplies the answer.
func extractThreads(doc *goquery.Document, pageURL string) []types.QAPair {
	var pairs []types.QAPair

	doc.Find(threadSelector).Each(func(_ int, thread *goquery.Selection) {
		firstPost := thread.Find(firstPostSelector).First()
		if firstPost.Length() == 0 {
			return
		}

		titleElem := firstPost.Find(postTitleSelector).First()
		contentElem := firstPost.Find(postContentSelector).First()
		if titleElem.Length() == 0 || contentElem.Length() == 0 {
			return
		}

		title := pipeline.Normalize(titleElem.Text())
		content := pipeline.Normalize(contentElem.Text())
		question := questionFrom(title, content)

		solution := thread.Find(solutionSelector).First()
		if solution.Length() == 0 {
			return
		}
		answer := pipeline.Normalize(solution.Text())
		if utf8.RuneCountInString(answer) <= minAnswerLength {
			return
		}

		pairs = append(pairs, types.QAPair{
			Question: question,
			Answer:   answer,
			Source:   pageURL,
		})
	})

	return pairs
}

// questionFrom derives a question: the title when it already is one, else
// the first question-shaped sentence in the content, else a template.
func questionFrom(title, content string) string {
	if strings.HasSuffix(title, "?") {
		return title
	}
	if sentence := firstQuestionSentence(content); sentence != "" {
		return sentence
	}
	return fallbackQuestion(title)
}
