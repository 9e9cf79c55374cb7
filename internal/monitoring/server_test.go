// internal/monitoring/server_test.go
package monitoring

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/qaharvest/qaharvest/internal/utils"
)

func TestServerEndpoints(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve a port: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	logger := utils.NewLoggerWithOutput(utils.ErrorLevel, io.Discard)
	srv := StartServer(addr, logger)
	defer srv.Shutdown()

	PagesFetched.WithLabelValues("discovery").Inc()

	base := fmt.Sprintf("http://%s", addr)
	resp := waitForServer(t, base+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	metricsResp, err := http.Get(base + "/metrics")
	if err != nil {
		t.Fatalf("failed to scrape metrics: %v", err)
	}
	defer metricsResp.Body.Close()

	body, err := io.ReadAll(metricsResp.Body)
	if err != nil {
		t.Fatalf("failed to read metrics body: %v", err)
	}
	if !strings.Contains(string(body), "qaharvest_pages_fetched_total") {
		t.Error("expected the pages fetched counter to be exported")
	}
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	var lastErr error
	for i := 0; i < 50; i++ {
		resp, err := http.Get(url)
		if err == nil {
			return resp
		}
		lastErr = err
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server never came up: %v", lastErr)
	return nil
}
