// internal/scraper/crawler.go
package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/utils"
)

// LinkCrawler turns discovered content pages into the working set of
// same-origin URLs the extractors run over.
type LinkCrawler struct {
	client  *Client
	baseURL string
	logger  utils.Logger
}

// NewLinkCrawler creates a crawler rooted at baseURL. Only links sharing the
// base URL's host are collected.
func NewLinkCrawler(client *Client, baseURL string, logger utils.Logger) *LinkCrawler {
	return &LinkCrawler{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Collect fetches each discovered page once (optionally capped at maxPages),
// records the page itself, then every valid same-host link not already seen.
// A page that was already collected as a link from an earlier page is still
// fetched, so its own links enter the working set; only pages already fetched
// are skipped. Fetch errors are logged and skipped.
func (lc *LinkCrawler) Collect(ctx context.Context, pages []string, maxPages int) []string {
	if maxPages > 0 && maxPages < len(pages) {
		lc.logger.Infof("limiting crawl to %d pages out of %d discovered", maxPages, len(pages))
		pages = pages[:maxPages]
	} else {
		lc.logger.Infof("will crawl all %d discovered pages", len(pages))
	}

	seen := make(map[string]bool)
	fetched := make(map[string]bool)
	var links []string

	for i, pageURL := range pages {
		lc.logger.Infof("crawling page %d/%d: %s", i+1, len(pages), pageURL)
		if fetched[pageURL] {
			continue
		}

		doc, err := lc.client.FetchDocument(ctx, pageURL)
		if err != nil {
			lc.logger.Warnf("error accessing %s: %v", pageURL, err)
			monitoring.FetchErrors.WithLabelValues("crawl").Inc()
			continue
		}
		monitoring.PagesFetched.WithLabelValues("crawl").Inc()

		fetched[pageURL] = true
		if !seen[pageURL] {
			seen[pageURL] = true
			links = append(links, pageURL)
		}
		links = lc.appendPageLinks(doc, seen, links, 0)
	}

	lc.logger.Infof("crawling complete, collected %d URLs", len(links))
	return links
}

// CollectFromBase walks directly from the base URL, extending the walk
// through collected links, until maxLinks URLs are gathered or the site runs
// out of reachable same-host pages.
func (lc *LinkCrawler) CollectFromBase(ctx context.Context, maxLinks int) []string {
	// seen tracks result membership; fetched tracks pages already walked.
	// They differ: a link is seen as soon as it is collected, but it still
	// has to be fetched once to contribute its own links.
	seen := make(map[string]bool)
	fetched := make(map[string]bool)
	var links []string
	queue := []string{lc.baseURL}

	for len(queue) > 0 && len(links) < maxLinks {
		pageURL := queue[0]
		queue = queue[1:]
		if fetched[pageURL] {
			continue
		}

		doc, err := lc.client.FetchDocument(ctx, pageURL)
		if err != nil {
			lc.logger.Warnf("error accessing %s: %v", pageURL, err)
			monitoring.FetchErrors.WithLabelValues("crawl").Inc()
			continue
		}
		monitoring.PagesFetched.WithLabelValues("crawl").Inc()

		fetched[pageURL] = true
		if !seen[pageURL] {
			seen[pageURL] = true
			links = append(links, pageURL)
		}

		before := len(links)
		links = lc.appendPageLinks(doc, seen, links, maxLinks)
		queue = append(queue, links[before:]...)
	}

	if len(links) > maxLinks {
		links = links[:maxLinks]
	}
	lc.logger.Infof("crawling complete, collected %d URLs", len(links))
	return links
}

// appendPageLinks scans every anchor on the page and appends valid,
// same-host, unseen absolute URLs. A maxLinks of 0 means unbounded.
func (lc *LinkCrawler) appendPageLinks(doc *goquery.Document, seen map[string]bool, links []string, maxLinks int) []string {
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if maxLinks > 0 && len(links) >= maxLinks {
			return
		}
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		resolved, err := utils.ResolveRef(lc.baseURL, href)
		if err != nil {
			return
		}
		if !utils.IsValidURL(resolved) || !utils.SameHost(resolved, lc.baseURL) || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})
	return links
}
