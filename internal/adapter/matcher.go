package adapter

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "golcov.dev/pkg/golcov/internal/model"
)

// Matcher decides whether a measured file is selected by a set of patterns.
type Matcher interface {
	Match(filename m.Path) bool
	Name() string
}

type globMatcher struct {
	name     string
	patterns []string
}

// PrepPatterns makes every pattern that does not start with a wildcard
// absolute against root, so "pkg/**" selects files under <root>/pkg.
func PrepPatterns(patterns []string, root m.Path) []string {
	prepped := make([]string, 0, len(patterns))

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if !startsWithWildcard(p) && !filepath.IsAbs(p) && root != "" {
			p = filepath.Join(string(root), p)
		}

		prepped = append(prepped, filepath.ToSlash(p))
	}

	return prepped
}

// NewGlobMatcher builds the matcher used for the include and omit options.
// Patterns support *, **, ?, [...] and {a,b}. Matching tries, in order:
//  1. the full slash-separated path;
//  2. for patterns led by a single wildcard, the pattern anchored anywhere ("**/" prefix);
//  3. for patterns without a separator, the base name.
func NewGlobMatcher(patterns []string, name string) (Matcher, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%s: invalid pattern %q", name, p)
		}
	}

	return &globMatcher{name: name, patterns: patterns}, nil
}

func (g *globMatcher) Name() string {
	return g.name
}

func (g *globMatcher) Match(filename m.Path) bool {
	target := filepath.ToSlash(string(filename))

	for _, p := range g.patterns {
		if matchPattern(p, target) {
			return true
		}
	}

	return false
}

func matchPattern(pattern, target string) bool {
	if ok, _ := doublestar.Match(pattern, target); ok {
		return true
	}

	if !startsWithWildcard(pattern) {
		return false
	}

	trimmed := strings.TrimPrefix(target, "/")
	if ok, _ := doublestar.Match(pattern, trimmed); ok {
		return true
	}

	if !strings.HasPrefix(pattern, "**/") {
		if ok, _ := doublestar.Match("**/"+pattern, trimmed); ok {
			return true
		}
	}

	if !strings.Contains(pattern, "/") {
		ok, _ := doublestar.Match(pattern, path.Base(target))
		return ok
	}

	return false
}

func startsWithWildcard(p string) bool {
	return strings.HasPrefix(p, "*") || strings.HasPrefix(p, "?")
}
