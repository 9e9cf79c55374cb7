// internal/pipeline/transform.go
package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TransformRule defines a single text transformation step.
type TransformRule struct {
	Type        string `yaml:"type" json:"type"`
	Pattern     string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Replacement string `yaml:"replacement,omitempty" json:"replacement,omitempty"`
}

// TransformList applies transformation rules in sequence.
type TransformList []TransformRule

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	lineBreakPattern  = regexp.MustCompile(`[\n\t\r]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Apply runs every rule in order over the input string.
func (tl TransformList) Apply(input string) (string, error) {
	result := input
	for i, rule := range tl {
		var err error
		result, err = rule.Apply(result)
		if err != nil {
			return "", fmt.Errorf("transform rule %d failed: %w", i, err)
		}
	}
	return result, nil
}

// Apply runs a single transformation rule over the input string.
func (tr TransformRule) Apply(input string) (string, error) {
	switch tr.Type {
	case "trim":
		return strings.TrimSpace(input), nil

	case "remove_html":
		// Tags are replaced with a space so adjacent text nodes stay separated.
		return tagPattern.ReplaceAllString(input, " "), nil

	case "unescape_entities":
		return html.UnescapeString(input), nil

	case "normalize_spaces":
		collapsed := lineBreakPattern.ReplaceAllString(input, " ")
		return whitespacePattern.ReplaceAllString(collapsed, " "), nil

	case "nfc":
		return norm.NFC.String(input), nil

	case "lowercase":
		return strings.ToLower(input), nil

	case "uppercase":
		return strings.ToUpper(input), nil

	case "regex":
		if tr.Pattern == "" {
			return "", fmt.Errorf("regex pattern is required")
		}
		re, err := regexp.Compile(tr.Pattern)
		if err != nil {
			return "", fmt.Errorf("invalid regex pattern: %w", err)
		}
		return re.ReplaceAllString(input, tr.Replacement), nil

	default:
		return "", fmt.Errorf("unknown transform type: %s", tr.Type)
	}
}

// normalizeRules is the fixed chain applied to every extracted text fragment.
// Tags are stripped again after entity decoding so entity-encoded markup does
// not survive as live tags; the output never carries a tag and a second
// application is a no-op.
var normalizeRules = TransformList{
	{Type: "remove_html"},
	{Type: "unescape_entities"},
	{Type: "remove_html"},
	{Type: "normalize_spaces"},
	{Type: "nfc"},
	{Type: "trim"},
}

// Normalize turns a raw extracted fragment into a single-line, whitespace
// collapsed, entity-decoded, tag-stripped string. Empty input yields "".
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	out, err := normalizeRules.Apply(input)
	if err != nil {
		// The fixed chain contains no fallible rules.
		return strings.TrimSpace(input)
	}
	return out
}
