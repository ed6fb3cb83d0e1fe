package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/savelicense/internal/model"
)

func TestJavaScriptCommentAdapter_Extract(t *testing.T) {
	adapter := NewJavaScriptCommentAdapter()

	t.Run("licenses and notes in source order", func(t *testing.T) {
		src := `
/*!
 * @license  MIT
 */

/* Copyright (c) _
 */

/**
 * released under the MIT license _
 */

// Copyright _
// THE SOFTWARE IS _

var a = 0;

// (C) _
//
// This software is _
`

		comments, err := adapter.Extract(context.Background(), "lib.js", src)
		require.NoError(t, err)

		assert.Equal(t, []m.Comment{
			{Kind: m.BlockComment, Text: "!\n * @license  MIT\n ", Line: 2, Column: 0},
			{Kind: m.BlockComment, Text: " Copyright (c) _\n ", Line: 6, Column: 0},
			{Kind: m.BlockComment, Text: "*\n * released under the MIT license _\n ", Line: 9, Column: 0},
			{Kind: m.LineComment, Text: " Copyright _", Line: 13, Column: 0},
			{Kind: m.LineComment, Text: " THE SOFTWARE IS _", Line: 14, Column: 0},
			{Kind: m.LineComment, Text: " (C) _", Line: 18, Column: 0},
			{Kind: m.LineComment, Text: "", Line: 19, Column: 0},
			{Kind: m.LineComment, Text: " This software is _", Line: 20, Column: 0},
		}, comments)
	})

	t.Run("comments nested in code", func(t *testing.T) {
		src := "function f() {\n  return 1; // one\n  /* two */\n}\n"

		comments, err := adapter.Extract(context.Background(), "f.js", src)
		require.NoError(t, err)

		assert.Equal(t, []m.Comment{
			{Kind: m.LineComment, Text: " one", Line: 2, Column: 12},
			{Kind: m.BlockComment, Text: " two ", Line: 3, Column: 2},
		}, comments)
	})

	t.Run("columns count characters", func(t *testing.T) {
		src := "var s = \"ééé\"; // ©\n"

		comments, err := adapter.Extract(context.Background(), "u.js", src)
		require.NoError(t, err)

		require.Len(t, comments, 1)
		assert.Equal(t, 15, comments[0].Column)
		assert.Equal(t, " ©", comments[0].Text)
	})

	t.Run("no comments", func(t *testing.T) {
		comments, err := adapter.Extract(context.Background(), "empty.js", "var a = 1;\n")
		require.NoError(t, err)

		assert.Empty(t, comments)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := adapter.Extract(context.Background(), "broken.js", "// MIT\nvar = ;\n")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
		assert.Contains(t, err.Error(), "at line")
		assert.NotContains(t, err.Error(), "broken.js")
	})
}

func TestStripDelimiters(t *testing.T) {
	tests := []struct {
		raw      string
		wantKind m.CommentKind
		wantText string
	}{
		{"// MIT", m.LineComment, " MIT"},
		{"//", m.LineComment, ""},
		{"/* MIT */", m.BlockComment, " MIT "},
		{"/**/", m.BlockComment, ""},
		{"/*!\n * x\n */", m.BlockComment, "!\n * x\n "},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			kind, text := stripDelimiters(tt.raw)

			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantText, text)
		})
	}
}
