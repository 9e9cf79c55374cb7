// internal/scraper/discovery.go
package scraper

import (
	"context"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/qaharvest/qaharvest/internal/utils"
)

// contentSelector marks a page as content-bearing rather than pure navigation.
const contentSelector = "main, article, .content, .post, .thread, .topic"

// paginationContainerSelector matches elements that usually wrap page-number links.
const paginationContainerSelector = ".pagination, .pager, .pages, nav, ul.page-numbers"

// nextLinkPattern matches the anchor-text vocabulary for "next page" links.
var nextLinkPattern = regexp.MustCompile(`(?i)next|>|›|»`)

// pagedURLPatterns are the URL shapes paged listings commonly use.
var pagedURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]page=\d+`),
	regexp.MustCompile(`/page/\d+/`),
	regexp.MustCompile(`[?&]p=\d+`),
	regexp.MustCompile(`/\d+/?$`),
}

// Discoverer breadth-first explores a site following pagination links and
// returns the URLs judged to be content pages.
type Discoverer struct {
	client  *Client
	baseURL string
	limit   int
	logger  utils.Logger
}

// NewDiscoverer creates a page discoverer capped at limit visits.
func NewDiscoverer(client *Client, baseURL string, limit int, logger utils.Logger) *Discoverer {
	return &Discoverer{
		client:  client,
		baseURL: baseURL,
		limit:   limit,
		logger:  logger,
	}
}

// Discover walks from the base URL and returns content-page URLs in
// first-encountered order. Traversal halts when the frontier empties or the
// visit cap is reached.
func (d *Discoverer) Discover(ctx context.Context) []string {
	d.logger.Infof("starting page discovery from %s", d.baseURL)

	walker := &Walker{
		Client:    d.client,
		MaxVisits: d.limit,
		Accept:    hasPrimaryContent,
		Harvest:   d.harvestPaginationLinks,
		Logger:    d.logger,
		Stage:     "discovery",
		Progress: func(visited, accepted int) {
			d.logger.Infof("discovering pages: %d URLs checked, %d pages found", visited, accepted)
		},
	}

	pages := walker.Walk(ctx, d.baseURL)
	d.logger.Infof("page discovery complete, found %d content pages", len(pages))
	return pages
}

// hasPrimaryContent reports whether the page carries a primary-content element.
func hasPrimaryContent(doc *goquery.Document, _ string) bool {
	return doc.Find(contentSelector).Length() > 0
}

// harvestPaginationLinks applies three independent heuristics to the same
// page and merges the results: "next" anchor text, anchors inside pagination
// containers, and hrefs shaped like paged URLs. Hrefs resolve against the
// base URL, matching how the walk started.
func (d *Discoverer) harvestPaginationLinks(doc *goquery.Document, _ string) []string {
	var candidates []string

	// Method 1: anchors whose text matches the "next" vocabulary.
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		if !nextLinkPattern.MatchString(a.Text()) {
			return
		}
		if resolved, ok := d.resolveHref(a); ok {
			candidates = append(candidates, resolved)
		}
	})

	// Method 2: every anchor inside a pagination container.
	doc.Find(paginationContainerSelector).Find("a").Each(func(_ int, a *goquery.Selection) {
		if resolved, ok := d.resolveHref(a); ok {
			candidates = append(candidates, resolved)
		}
	})

	// Method 3: anchors whose raw href looks like a paged URL.
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		for _, pattern := range pagedURLPatterns {
			if pattern.MatchString(href) {
				if resolved, ok := d.resolveHref(a); ok {
					candidates = append(candidates, resolved)
				}
				break
			}
		}
	})

	return candidates
}

// resolveHref resolves an anchor's href against the base URL.
func (d *Discoverer) resolveHref(a *goquery.Selection) (string, bool) {
	href, exists := a.Attr("href")
	if !exists || href == "" {
		return "", false
	}
	resolved, err := utils.ResolveRef(d.baseURL, href)
	if err != nil {
		return "", false
	}
	return resolved, true
}
