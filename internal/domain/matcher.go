package domain

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/savelicense/internal/model"
)

// DefaultPattern recognises the usual license markers: `/*!` comments,
// @preserve/@cc_on annotations, license names, copyright words and signs.
const DefaultPattern = `(?mi)^!|^@(preserve|cc_on)\b|\b(MIT|MPL|GPL|License|Copyright)\b|\W\(c\)|©`

// flagGroup matches a leading inline flag group such as (?i) or (?ms-U).
var flagGroup = regexp.MustCompile(`^\(\?[imsU]*(-[imsU]+)?\)`)

// DefaultPatterns returns the detection patterns used when none are configured.
func DefaultPatterns() []string {
	return []string{DefaultPattern}
}

// TextMatcher decides whether a comment body looks like a license notice.
type TextMatcher interface {
	Match(text string) bool
}

// RegexpMatcher matches when any of its regular expressions matches.
type RegexpMatcher struct {
	patterns []*regexp.Regexp
}

// NewRegexpMatcher builds a matcher from already compiled expressions.
func NewRegexpMatcher(patterns ...*regexp.Regexp) *RegexpMatcher {
	return &RegexpMatcher{patterns: patterns}
}

// CompilePatterns compiles the given expressions. Expressions without a
// leading flag group are made case-insensitive and multiline. An empty list
// yields the default patterns.
func CompilePatterns(exprs []string) (*RegexpMatcher, error) {
	if len(exprs) == 0 {
		exprs = DefaultPatterns()
	}

	patterns := make([]*regexp.Regexp, 0, len(exprs))

	for _, expr := range exprs {
		if !flagGroup.MatchString(expr) {
			expr = "(?mi)" + expr
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, expr, err)
		}

		patterns = append(patterns, re)
	}

	return NewRegexpMatcher(patterns...), nil
}

// Match reports whether text matches at least one pattern.
func (rm *RegexpMatcher) Match(text string) bool {
	for _, re := range rm.patterns {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}

// Patterns returns the source of the compiled expressions.
func (rm *RegexpMatcher) Patterns() []string {
	exprs := make([]string, 0, len(rm.patterns))
	for _, re := range rm.patterns {
		exprs = append(exprs, re.String())
	}

	return exprs
}

// FilterLicenses keeps the groups in which at least one comment matches.
// Each comment is matched on its own text, not on the joined group text.
func FilterLicenses(groups []m.CommentGroup, matcher TextMatcher) []m.CommentGroup {
	licenses := make([]m.CommentGroup, 0, len(groups))

	for _, group := range groups {
		for _, comment := range group.Comments {
			if matcher.Match(comment.Text) {
				licenses = append(licenses, group)
				break
			}
		}
	}

	return licenses
}
