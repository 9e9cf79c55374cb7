// internal/scraper/walker.go
package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/qaharvest/qaharvest/internal/monitoring"
	"github.com/qaharvest/qaharvest/internal/utils"
)

// AcceptFunc decides whether a fetched page belongs in the walk's result list.
type AcceptFunc func(doc *goquery.Document, pageURL string) bool

// HarvestFunc returns candidate URLs to enqueue from a fetched page.
type HarvestFunc func(doc *goquery.Document, pageURL string) []string

// ProgressFunc is called every ten visits with the running totals.
type ProgressFunc func(visited, accepted int)

// Walker is a bounded breadth-first URL traversal: a frontier queue, a
// visited set, an acceptance predicate and a link-harvesting strategy.
// Each traversal owns its own frontier and visited set.
type Walker struct {
	Client    *Client
	MaxVisits int
	Accept    AcceptFunc
	Harvest   HarvestFunc
	Logger    utils.Logger
	Progress  ProgressFunc
	Stage     string
}

// Walk traverses breadth-first from start until the frontier empties or the
// visit cap is reached, returning accepted URLs in first-encountered order.
// Fetch failures are logged and the URL is dropped without retry.
func (w *Walker) Walk(ctx context.Context, start string) []string {
	frontier := []string{start}
	visited := make(map[string]bool)
	var accepted []string

	visits := 0
	for len(frontier) > 0 && visits < w.MaxVisits {
		pageURL := frontier[0]
		frontier = frontier[1:]
		if visited[pageURL] {
			continue
		}

		visits++
		if w.Progress != nil && visits%10 == 0 {
			w.Progress(visits, len(accepted))
		}

		doc, err := w.Client.FetchDocument(ctx, pageURL)
		if err != nil {
			w.Logger.Warnf("error accessing %s during %s: %v", pageURL, w.Stage, err)
			monitoring.FetchErrors.WithLabelValues(w.Stage).Inc()
			continue
		}
		visited[pageURL] = true
		monitoring.PagesFetched.WithLabelValues(w.Stage).Inc()

		if w.Accept == nil || w.Accept(doc, pageURL) {
			accepted = append(accepted, pageURL)
		}

		if w.Harvest == nil {
			continue
		}
		for _, candidate := range w.Harvest(doc, pageURL) {
			if !visited[candidate] && utils.IsValidURL(candidate) {
				frontier = append(frontier, candidate)
			}
		}
	}

	return accepted
}
