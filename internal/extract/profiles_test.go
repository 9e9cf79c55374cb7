// internal/extract/profiles_test.go
package extract

import (
	"testing"

	"github.com/qaharvest/qaharvest/internal/config"
)

func TestForURL(t *testing.T) {
	ps := DefaultProfiles()

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"exact host match", "https://verizon.com/support", "verizon"},
		{"subdomain match", "https://community.verizon.com/t5/x", "verizon"},
		{"unknown host gets generic", "https://example.com/forum", "generic"},
		{"invalid url gets generic", "not a url", "generic"},
		{"suffix must be a label boundary", "https://notverizon.com/", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ps.ForURL(tt.url); got.Name != tt.expected {
				t.Errorf("ForURL(%q) picked %q, want %q", tt.url, got.Name, tt.expected)
			}
		})
	}
}

func TestApplyOverridesAddsProfile(t *testing.T) {
	ps := DefaultProfiles()
	ps.ApplyOverrides(map[string]config.ProfileConfig{
		"support": {
			Hosts:            []string{"support.example.com"},
			PostContainers:   []string{".ticket"},
			TitleSelectors:   []string{".ticket-title"},
			ContentSelectors: []string{".ticket-body"},
		},
	})

	got := ps.ForURL("https://support.example.com/t/1")
	if got.Name != "support" {
		t.Fatalf("expected support profile, got %q", got.Name)
	}
	if len(got.PostContainers) != 1 || got.PostContainers[0] != ".ticket" {
		t.Errorf("unexpected containers: %v", got.PostContainers)
	}
}

func TestApplyOverridesReplacesProfile(t *testing.T) {
	ps := DefaultProfiles()
	ps.ApplyOverrides(map[string]config.ProfileConfig{
		"verizon": {
			Hosts:          []string{"verizon.com"},
			PostContainers: []string{".lia-message"},
		},
	})

	got := ps.ForURL("https://community.verizon.com/")
	if got.Name != "verizon" {
		t.Fatalf("expected verizon profile, got %q", got.Name)
	}
	if len(got.PostContainers) != 1 || got.PostContainers[0] != ".lia-message" {
		t.Errorf("override did not replace the profile: %v", got.PostContainers)
	}
}
