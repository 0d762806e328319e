package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// TagPattern defines a tag that can be used verbatim as a CSS class.
var TagPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateTag checks if a greeting tag matches the allowed pattern.
func ValidateTag(tag string) bool {
	if tag == "" || len(tag) > 64 {
		return false
	}
	return TagPattern.MatchString(tag)
}

// NormalizeQuery lowercases and trims chat input so keyword matching is
// case-insensitive.
func NormalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ValidateOrigin checks that a CORS origin is an http(s) scheme and host with
// nothing else attached.
func ValidateOrigin(origin string) (bool, string) {
	if origin == "" {
		return false, "origin is required"
	}
	if origin == "*" {
		return true, ""
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false, "invalid origin format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "origin must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "origin must have a valid host"
	}

	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return false, "origin must not contain a path, query or fragment"
	}

	return true, ""
}
