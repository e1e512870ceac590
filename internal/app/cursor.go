package app

import (
	"github.com/dshills/zoomfold/internal/dispatcher"
	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/input"
)

// cursorHandler implements cursor movement over the active snapshot.
type cursorHandler struct {
	*dispatcher.BaseNamespaceHandler
	editor *Editor
}

func newCursorHandler(e *Editor) *cursorHandler {
	h := &cursorHandler{
		BaseNamespaceHandler: dispatcher.NewBaseNamespaceHandler("cursor"),
		editor:               e,
	}
	h.Register("cursor.moveUp", h.move(moveUp))
	h.Register("cursor.moveDown", h.move(moveDown))
	h.Register("cursor.moveLeft", h.move(moveLeft))
	h.Register("cursor.moveRight", h.move(moveRight))
	h.Register("cursor.lineStart", h.move(moveLineStart))
	h.Register("cursor.lineEnd", h.move(moveLineEnd))
	return h
}

type moveFunc func(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset

func (h *cursorHandler) move(fn moveFunc) func(input.Action, *dispatcher.Context) dispatcher.Result {
	return func(action input.Action, _ *dispatcher.Context) dispatcher.Result {
		snap := h.editor.snapshot
		if snap == nil {
			return dispatcher.NoOp()
		}
		cursor := snap.PrimarySelection().Start
		count := action.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			cursor = fn(snap, cursor)
		}
		if cursor == snap.PrimarySelection().Start {
			return dispatcher.NoOp()
		}
		h.editor.snapshot = snap.WithCursor(cursor)
		return dispatcher.OK()
	}
}

func moveLeft(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset {
	if cursor > 0 {
		return cursor - 1
	}
	return cursor
}

func moveRight(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset {
	if cursor < snap.Len() {
		return cursor + 1
	}
	return cursor
}

func moveUp(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset {
	line := snap.LineContaining(cursor)
	if line == 0 {
		return cursor
	}
	return targetColumn(snap, line-1, cursor-snap.LineStart(line))
}

func moveDown(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset {
	line := snap.LineContaining(cursor)
	if line+1 >= snap.LineCount() {
		return cursor
	}
	return targetColumn(snap, line+1, cursor-snap.LineStart(line))
}

func moveLineStart(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset {
	return snap.LineStart(snap.LineContaining(cursor))
}

func moveLineEnd(snap *buffer.Snapshot, cursor buffer.ByteOffset) buffer.ByteOffset {
	return snap.LineEnd(snap.LineContaining(cursor))
}

// targetColumn lands on the same column of the target line, clamped to
// that line's length.
func targetColumn(snap *buffer.Snapshot, line uint32, column buffer.ByteOffset) buffer.ByteOffset {
	start := snap.LineStart(line)
	end := snap.LineEnd(line)
	if start+column > end {
		return end
	}
	return start + column
}
