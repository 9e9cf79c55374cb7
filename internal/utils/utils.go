package utils

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether a string parses into a URL carrying both a
// scheme and a host. Relative paths and malformed strings are invalid.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// ResolveRef resolves a possibly-relative href against a base URL and
// returns the absolute form.
func ResolveRef(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return b.ResolveReference(ref).String(), nil
}

// SameHost reports whether two URLs share a network location (host).
// Unparseable URLs never match.
func SameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host != "" && ua.Host == ub.Host
}

// ExtractHost returns the host portion of a URL, or an empty string when the
// URL does not parse.
func ExtractHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
