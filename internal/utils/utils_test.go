// internal/utils/utils_test.go
package utils

import "testing"

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://a.com/x", true},
		{"http://example.com", true},
		{"/relative/path", false},
		{"not a url", false},
		{"", false},
		{"https://", false},
		{"example.com/no-scheme", false},
		{"ftp://files.example.com/pub", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidURL(tt.input); got != tt.expected {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSameHost(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"same host", "https://a.com/x", "https://a.com/y", true},
		{"different host", "https://a.com/x", "https://b.com/x", false},
		{"subdomain is a different host", "https://www.a.com/", "https://a.com/", false},
		{"relative has no host", "/x", "https://a.com/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameHost(tt.a, tt.b); got != tt.expected {
				t.Errorf("SameHost(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestResolveRef(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		href     string
		expected string
	}{
		{"relative path", "https://a.com/forum/", "thread/12", "https://a.com/forum/thread/12"},
		{"absolute path", "https://a.com/forum/", "/help", "https://a.com/help"},
		{"absolute url", "https://a.com/", "https://b.com/x", "https://b.com/x"},
		{"query only", "https://a.com/list", "?page=2", "https://a.com/list?page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRef(tt.base, tt.href)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ResolveRef(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.expected)
			}
		})
	}
}

func TestExtractHost(t *testing.T) {
	if got := ExtractHost("https://community.verizon.com/t5/x"); got != "community.verizon.com" {
		t.Errorf("unexpected host: %q", got)
	}
	if got := ExtractHost("not a url"); got != "" {
		t.Errorf("expected empty host for invalid URL, got %q", got)
	}
}
