// internal/scraper/client_test.go
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestFetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Hello</h1></body></html>`)
	}))
	defer srv.Close()

	client := testClient()
	defer client.Close()

	doc, err := client.FetchDocument(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Find("h1").Text(); got != "Hello" {
		t.Errorf("unexpected document content: %q", got)
	}
}

func TestFetchDocumentNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := testClient()
	defer client.Close()

	_, err := client.FetchDocument(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "page unavailable: status 404") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClientRotatesUserAgents(t *testing.T) {
	var mu sync.Mutex
	var agents []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		agents = append(agents, r.UserAgent())
		mu.Unlock()
		fmt.Fprint(w, `<html></html>`)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{UserAgents: []string{"agent-a", "agent-b"}})
	defer client.Close()

	for i := 0; i < 3; i++ {
		if _, err := client.FetchDocument(context.Background(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []string{"agent-a", "agent-b", "agent-a"}
	mu.Lock()
	defer mu.Unlock()
	if len(agents) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(agents))
	}
	for i := range want {
		if agents[i] != want[i] {
			t.Errorf("request %d used %q, want %q", i, agents[i], want[i])
		}
	}
}

func TestFetchDocumentRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := testClient()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.FetchDocument(ctx, srv.URL); err == nil {
		t.Error("expected error for cancelled context")
	}
}
