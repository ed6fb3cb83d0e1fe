package domain

import (
	m "github.com/mouse-blink/savelicense/internal/model"
)

// lineRun is an open run of adjacent line comments.
type lineRun struct {
	lastLine int
	comments []m.Comment
}

// groupState is either idle (run == nil) or accumulating a line run.
type groupState struct {
	run *lineRun
}

// GroupComments folds comments, in source order, into comment groups.
// A block comment is always a group of its own. Line comments on
// consecutive lines are grouped together; a gap of one or more lines, or a
// block comment, closes the current run.
func GroupComments(comments []m.Comment) []m.CommentGroup {
	groups := make([]m.CommentGroup, 0, len(comments))
	state := groupState{}

	for _, comment := range comments {
		var done []m.CommentGroup

		state, done = step(state, comment)
		groups = append(groups, done...)
	}

	return append(groups, flush(state)...)
}

// step is the transition function of the grouping state machine. It returns
// the next state and the groups completed by consuming c.
func step(state groupState, c m.Comment) (groupState, []m.CommentGroup) {
	if c.Kind == m.BlockComment {
		done := flush(state)
		done = append(done, m.CommentGroup{Comments: []m.Comment{c}})

		return groupState{}, done
	}

	if state.run != nil && c.Line == state.run.lastLine+1 {
		run := &lineRun{
			lastLine: c.Line,
			comments: append(state.run.comments, c),
		}

		return groupState{run: run}, nil
	}

	return groupState{run: &lineRun{lastLine: c.Line, comments: []m.Comment{c}}}, flush(state)
}

// flush closes the open line run, if any.
func flush(state groupState) []m.CommentGroup {
	if state.run == nil {
		return nil
	}

	return []m.CommentGroup{{Comments: state.run.comments}}
}
