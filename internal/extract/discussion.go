// internal/extract/discussion.go
package extract

import (
	"context"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/output"
	"github.com/qaharvest/qaharvest/internal/pipeline"
	"github.com/qaharvest/qaharvest/internal/scraper"
	"github.com/qaharvest/qaharvest/internal/utils"
	"github.com/qaharvest/qaharvest/pkg/types"
)

// Page-level fallback selectors, used when a page has no recognizable post
// containers at all.
var (
	pageTitleSelectors = []string{
		"h1", "h2", ".entry-title", ".article-title", ".page-title",
	}
	pageContentSelectors = []string{
		"article", ".entry-content", ".post-content", ".content", "main",
		".page-content",
	}
)

const (
	minPostContentLength     = 20
	minFallbackContentLength = 50
)

// DiscussionExtractor pulls forum-style title/content records out of pages,
// choosing a selector profile by URL host.
type DiscussionExtractor struct {
	client   *scraper.Client
	profiles *ProfileSet
	logger   utils.Logger
	snapshot *output.Snapshotter[types.DiscussionPost]
}

// NewDiscussionExtractor creates a discussion extractor. snapshot may be nil.
func NewDiscussionExtractor(client *scraper.Client, profiles *ProfileSet, logger utils.Logger, snapshot *output.Snapshotter[types.DiscussionPost]) *DiscussionExtractor {
	return &DiscussionExtractor{
		client:   client,
		profiles: profiles,
		logger:   logger,
		snapshot: snapshot,
	}
}

// Extract processes the URLs sequentially and returns every discussion
// record found, snapshotting the accumulated list periodically.
func (e *DiscussionExtractor) Extract(ctx context.Context, urls []string) []types.DiscussionPost {
	var posts []types.DiscussionPost

	for i, pageURL := range urls {
		e.logger.Infof("extracting discussions from URL %d/%d: %s", i+1, len(urls), pageURL)

		doc, err := e.client.FetchDocument(ctx, pageURL)
		if err != nil {
			e.logger.Warnf("error processing %s: %v", pageURL, err)
			monitoring.FetchErrors.WithLabelValues("discussion").Inc()
		} else {
			monitoring.PagesFetched.WithLabelValues("discussion").Inc()
			profile := e.profiles.ForURL(pageURL)
			found := extractDiscussionsFromDocument(doc, profile, pageURL)
			monitoring.RecordsExtracted.WithLabelValues("discussion").Add(float64(len(found)))
			posts = append(posts, found...)
		}

		e.snapshot.MaybeWrite(i+1, posts)
	}

	return posts
}

// extractDiscussionsFromDocument collects every post-container match for the
// profile. An element matching two container selectors is collected twice;
// format-time deduplication cleans that up. When no containers match at all,
// the page-level title/content fallback applies with a stricter length bar.
func extractDiscussionsFromDocument(doc *goquery.Document, profile SelectorProfile, pageURL string) []types.DiscussionPost {
	var containers []*goquery.Selection
	for _, selector := range profile.PostContainers {
		doc.Find(selector).Each(func(_ int, post *goquery.Selection) {
			containers = append(containers, post)
		})
	}

	if len(containers) == 0 {
		return pageLevelFallback(doc, pageURL)
	}

	var posts []types.DiscussionPost
	for _, container := range containers {
		title := firstMatchText(container, profile.TitleSelectors)
		content := firstMatchText(container, profile.ContentSelectors)
		if title == "" || content == "" || utf8.RuneCountInString(content) <= minPostContentLength {
			continue
		}
		posts = append(posts, types.DiscussionPost{
			Title:   title,
			Content: content,
			Source:  pageURL,
		})
	}
	return posts
}

// pageLevelFallback treats the whole page as one post: main title plus main
// content, kept only when the content clears the broader threshold.
func pageLevelFallback(doc *goquery.Document, pageURL string) []types.DiscussionPost {
	title := firstMatchText(doc.Selection, pageTitleSelectors)
	content := firstMatchText(doc.Selection, pageContentSelectors)
	if title == "" || content == "" || utf8.RuneCountInString(content) <= minFallbackContentLength {
		return nil
	}
	return []types.DiscussionPost{{
		Title:   title,
		Content: content,
		Source:  pageURL,
	}}
}

// firstMatchText tries selectors in priority order and returns the first
// matching element's normalized text, or "" when nothing matches.
func firstMatchText(scope *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		if match := scope.Find(selector).First(); match.Length() > 0 {
			return pipeline.Normalize(match.Text())
		}
	}
	return ""
}
