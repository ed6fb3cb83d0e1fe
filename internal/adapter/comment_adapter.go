package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	m "github.com/mouse-blink/savelicense/internal/model"
)

const (
	commentNodeType = "comment"
	errorNodeType   = "ERROR"
	lineCommentMark = "//"
	blockStartMark  = "/*"
	blockEndMark    = "*/"
)

// ErrSyntax is returned when the parsed tree contains error nodes.
var ErrSyntax = errors.New("syntax error")

// CommentAdapter extracts comments from source text. Comments are returned
// in source order together with their kind and start location.
type CommentAdapter interface {
	Extract(ctx context.Context, path m.Path, text string) ([]m.Comment, error)
}

// JavaScriptCommentAdapter is a CommentAdapter backed by the tree-sitter
// JavaScript grammar.
type JavaScriptCommentAdapter struct{}

// NewJavaScriptCommentAdapter constructs a JavaScriptCommentAdapter.
func NewJavaScriptCommentAdapter() *JavaScriptCommentAdapter {
	return &JavaScriptCommentAdapter{}
}

// Extract parses text as a JavaScript program and collects its comments.
func (a *JavaScriptCommentAdapter) Extract(ctx context.Context, path m.Path, text string) ([]m.Comment, error) {
	src := []byte(text)

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		return nil, fmt.Errorf("%w at line %d", ErrSyntax, line)
	}

	var comments []m.Comment

	walk(root, func(node *sitter.Node) {
		if node.Type() != commentNodeType {
			return
		}

		comments = append(comments, newComment(node, src))
	})

	return comments, nil
}

// walk visits node and its descendants in document order.
func walk(node *sitter.Node, fn func(*sitter.Node)) {
	fn(node)

	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), fn)
	}
}

func firstErrorLine(root *sitter.Node) int {
	line := 0

	walk(root, func(node *sitter.Node) {
		if line == 0 && (node.Type() == errorNodeType || node.IsMissing()) {
			line = int(node.StartPoint().Row) + 1
		}
	})

	return line
}

func newComment(node *sitter.Node, src []byte) m.Comment {
	raw := node.Content(src)
	start := node.StartPoint()

	// tree-sitter columns count bytes; report characters instead.
	startByte := int(node.StartByte())
	lineStart := startByte - int(start.Column)
	column := utf8.RuneCount(src[lineStart:startByte])

	kind, body := stripDelimiters(raw)

	return m.Comment{
		Kind:   kind,
		Text:   body,
		Line:   int(start.Row) + 1,
		Column: column,
	}
}

// stripDelimiters removes the comment markers and nothing else.
func stripDelimiters(raw string) (m.CommentKind, string) {
	if strings.HasPrefix(raw, lineCommentMark) {
		return m.LineComment, strings.TrimPrefix(raw, lineCommentMark)
	}

	body := strings.TrimPrefix(raw, blockStartMark)
	body = strings.TrimSuffix(body, blockEndMark)

	return m.BlockComment, body
}
