// internal/extract/profiles.go
package extract

import (
	"strings"

	"github.com/qaharvest/qaharvest/internal/config"
	"github.com/qaharvest/qaharvest/internal/utils"
)

// SelectorProfile is a named set of CSS selectors for pulling forum-style
// posts out of a site's markup. Profiles are selected by URL host; the
// generic profile serves every host no named profile claims.
type SelectorProfile struct {
	Name             string
	Hosts            []string
	PostContainers   []string
	TitleSelectors   []string
	ContentSelectors []string
}

// ProfileSet is the closed set of known selector profiles.
type ProfileSet struct {
	profiles []SelectorProfile
	generic  SelectorProfile
}

// DefaultProfiles returns the built-in profiles: the generic forum profile
// and the Verizon community profile.
func DefaultProfiles() *ProfileSet {
	return &ProfileSet{
		generic: SelectorProfile{
			Name: "generic",
			PostContainers: []string{
				"div.post", "div.thread", "article", "div.message", "div.topic",
				"div.forum-post", ".message-list", ".discussion-thread",
			},
			TitleSelectors: []string{
				"h1", "h2", "h3", ".post-title", ".thread-title", ".topic-title",
				".message-subject",
			},
			ContentSelectors: []string{
				".post-content", ".message-body", ".post-body", ".content",
				".post-text", ".message-text", ".thread-body",
			},
		},
		profiles: []SelectorProfile{
			{
				Name:  "verizon",
				Hosts: []string{"verizon.com"},
				PostContainers: []string{
					".message", ".post", ".reply", ".comment", ".response",
				},
				TitleSelectors: []string{
					".subject", ".title", "h1", "h2", "h3",
				},
				ContentSelectors: []string{
					".content", ".body", ".text", ".message-body",
				},
			},
		},
	}
}

// ApplyOverrides merges config-file profile definitions into the set. A
// profile whose name matches an existing one replaces it; new names are added.
func (ps *ProfileSet) ApplyOverrides(overrides map[string]config.ProfileConfig) {
	for name, override := range overrides {
		profile := SelectorProfile{
			Name:             name,
			Hosts:            override.Hosts,
			PostContainers:   override.PostContainers,
			TitleSelectors:   override.TitleSelectors,
			ContentSelectors: override.ContentSelectors,
		}

		replaced := false
		for i, existing := range ps.profiles {
			if existing.Name == name {
				ps.profiles[i] = profile
				replaced = true
				break
			}
		}
		if !replaced {
			ps.profiles = append(ps.profiles, profile)
		}
	}
}

// ForURL returns the profile whose host list matches the URL's host, or the
// generic profile. Hosts match on suffix so subdomains are covered.
func (ps *ProfileSet) ForURL(pageURL string) SelectorProfile {
	host := utils.ExtractHost(pageURL)
	if host == "" {
		return ps.generic
	}
	for _, profile := range ps.profiles {
		for _, h := range profile.Hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return profile
			}
		}
	}
	return ps.generic
}
