package editor

import "flowboard/diagram"

// History manages undo/redo using two stacks of deep-copied diagram
// snapshots. Each entry is exclusively owned by the history; no aliasing
// with the live session state.
type History struct {
	undo  []*diagram.Diagram
	redo  []*diagram.Diagram
	limit int // Maximum undo depth; oldest entries are evicted
}

// DefaultHistoryLimit caps undo depth when no limit is configured.
const DefaultHistoryLimit = 100

// NewHistory creates a history manager. A non-positive limit falls back to
// DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		undo:  make([]*diagram.Diagram, 0, limit),
		redo:  nil,
		limit: limit,
	}
}

// Record deep-copies the given state onto the undo stack. Any redo history
// is discarded: a new mutation branches off and invalidates it.
func (h *History) Record(d *diagram.Diagram) {
	h.RecordSnapshot(d.Clone())
}

// RecordSnapshot pushes an already-copied state onto the undo stack, taking
// ownership of it. Used by drag gestures, which capture the pre-drag state
// at gesture start and commit it once at gesture end.
func (h *History) RecordSnapshot(snap *diagram.Diagram) {
	h.undo = h.push(h.undo, snap)
	h.redo = h.redo[:0]
}

// Undo returns the state to restore, pushing a copy of current onto the
// redo stack. Returns nil when the undo stack is empty; callers treat that
// as a no-op, never an error.
func (h *History) Undo(current *diagram.Diagram) *diagram.Diagram {
	if len(h.undo) == 0 {
		return nil
	}
	h.redo = h.push(h.redo, current.Clone())
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top
}

// Redo is symmetric to Undo: returns nil when the redo stack is empty.
func (h *History) Redo(current *diagram.Diagram) *diagram.Diagram {
	if len(h.redo) == 0 {
		return nil
	}
	h.undo = h.push(h.undo, current.Clone())
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top
}

// CanUndo returns true if undo is possible.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if redo is possible.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Stats returns the current stack depths for display.
func (h *History) Stats() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Clear drops all history.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// push appends with oldest-entry eviction at the configured limit.
func (h *History) push(stack []*diagram.Diagram, snap *diagram.Diagram) []*diagram.Diagram {
	stack = append(stack, snap)
	if len(stack) > h.limit {
		stack = stack[1:]
	}
	return stack
}
