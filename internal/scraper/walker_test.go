// internal/scraper/walker_test.go
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/qaharvest/qaharvest/internal/utils"
)

func quietLogger() utils.Logger {
	return utils.NewLoggerWithOutput(utils.ErrorLevel, io.Discard)
}

func testClient() *Client {
	return NewClient(ClientConfig{Timeout: 5 * time.Second})
}

// harvestAnchors returns every anchor href resolved against base.
func harvestAnchors(base string) HarvestFunc {
	return func(doc *goquery.Document, _ string) []string {
		var out []string
		doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if resolved, err := utils.ResolveRef(base, href); err == nil {
				out = append(out, resolved)
			}
		})
		return out
	}
}

func TestWalkerHonorsVisitCap(t *testing.T) {
	// Every page links to the next one, so the frontier never empties and
	// only the cap can stop the walk.
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		n := 0
		fmt.Sscanf(r.URL.Path, "/page/%d", &n)
		fmt.Fprintf(w, `<html><body><main>page %d</main><a href="/page/%d">next</a></body></html>`, n, n+1)
	}))
	defer srv.Close()

	client := testClient()
	defer client.Close()

	walker := &Walker{
		Client:    client,
		MaxVisits: 5,
		Harvest:   harvestAnchors(srv.URL),
		Logger:    quietLogger(),
		Stage:     "discovery",
	}

	accepted := walker.Walk(context.Background(), srv.URL+"/page/1")

	if got := atomic.LoadInt32(&requests); got != 5 {
		t.Errorf("expected exactly 5 requests, got %d", got)
	}
	if len(accepted) != 5 {
		t.Errorf("expected 5 accepted URLs, got %d: %v", len(accepted), accepted)
	}
}

func TestWalkerAcceptFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main>start</main><a href="/nav">nav</a><a href="/post">post</a></body></html>`)
	})
	mux.HandleFunc("/nav", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div>navigation only</div></body></html>`)
	})
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main>a real post</main></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient()
	defer client.Close()

	walker := &Walker{
		Client:    client,
		MaxVisits: 10,
		Accept:    hasPrimaryContent,
		Harvest:   harvestAnchors(srv.URL),
		Logger:    quietLogger(),
		Stage:     "discovery",
	}

	accepted := walker.Walk(context.Background(), srv.URL+"/start")

	want := []string{srv.URL + "/start", srv.URL + "/post"}
	if len(accepted) != len(want) {
		t.Fatalf("expected %v, got %v", want, accepted)
	}
	for i := range want {
		if accepted[i] != want[i] {
			t.Errorf("accepted[%d] = %q, want %q", i, accepted[i], want[i])
		}
	}
}

func TestWalkerSkipsFailedFetches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main>start</main><a href="/missing">gone</a><a href="/ok">ok</a></body></html>`)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main>ok</main></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient()
	defer client.Close()

	walker := &Walker{
		Client:    client,
		MaxVisits: 10,
		Harvest:   harvestAnchors(srv.URL),
		Logger:    quietLogger(),
		Stage:     "discovery",
	}

	accepted := walker.Walk(context.Background(), srv.URL+"/start")

	for _, u := range accepted {
		if u == srv.URL+"/missing" {
			t.Errorf("failed URL should not be accepted: %v", accepted)
		}
	}
	if len(accepted) != 2 {
		t.Errorf("expected 2 accepted URLs, got %v", accepted)
	}
}

func TestWalkerVisitsEachURLOnce(t *testing.T) {
	var startHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&startHits, 1)
		// Both children link back to the start page.
		fmt.Fprint(w, `<html><body><main>s</main><a href="/a">a</a><a href="/b">b</a></body></html>`)
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main>a</main><a href="/start">back</a></body></html>`)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main>b</main><a href="/start">back</a></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := testClient()
	defer client.Close()

	walker := &Walker{
		Client:    client,
		MaxVisits: 20,
		Harvest:   harvestAnchors(srv.URL),
		Logger:    quietLogger(),
		Stage:     "discovery",
	}

	accepted := walker.Walk(context.Background(), srv.URL+"/start")

	if got := atomic.LoadInt32(&startHits); got != 1 {
		t.Errorf("start page fetched %d times, want 1", got)
	}
	if len(accepted) != 3 {
		t.Errorf("expected 3 accepted URLs, got %v", accepted)
	}
}
