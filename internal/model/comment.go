package model

import "strings"

// CommentKind distinguishes `//` comments from `/* */` comments.
type CommentKind string

const (
	// LineComment is a `//` comment running to the end of its line.
	LineComment CommentKind = "line"
	// BlockComment is a `/* ... */` comment, possibly spanning several lines.
	BlockComment CommentKind = "block"
)

// Comment is a single comment as found in a source file.
type Comment struct {
	Kind   CommentKind
	Text   string // body without the comment delimiters
	Line   int    // starts at 1
	Column int    // starts at 0, counted in characters
}

// Position is a 1-based line:column location.
type Position struct {
	Line   int
	Column int
}

// Position returns the 1-based start position of the comment.
func (c Comment) Position() Position {
	return Position{Line: c.Line, Column: c.Column + 1}
}

// CommentGroup is a run of adjacent line comments or a single block comment.
type CommentGroup struct {
	Comments []Comment
}

// LicenseText is the deduplication key of a comment group.
type LicenseText string

// Text joins the comment bodies of the group with newlines.
func (g CommentGroup) Text() LicenseText {
	texts := make([]string, 0, len(g.Comments))
	for _, c := range g.Comments {
		texts = append(texts, c.Text)
	}

	return LicenseText(strings.Join(texts, "\n"))
}

// Start returns the position of the first comment in the group.
func (g CommentGroup) Start() Position {
	if len(g.Comments) == 0 {
		return Position{}
	}

	return g.Comments[0].Position()
}
