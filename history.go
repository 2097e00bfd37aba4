package sketch

// entry reverses one mutation. Running apply performs the reversal and
// returns the entry that reverses the reversal, so redo is undo of undo.
type entry struct {
	label string
	apply func() entry
}

// history keeps undo and redo entries on two separate stacks.
type history struct {
	undo  []entry
	redo  []entry
	limit int // maximum undo depth, 0 for unlimited
}

// record pushes the inverse of a new mutation and drops the redo stack.
func (h *history) record(e entry) {
	h.undo = append(h.undo, e)
	clear(h.redo)
	h.redo = h.redo[:0]
	if h.limit > 0 && len(h.undo) > h.limit {
		n := len(h.undo) - h.limit
		clear(h.undo[:n])
		h.undo = h.undo[n:]
	}
}

// stepBack runs the newest undo entry and moves its inverse to the redo
// stack. It returns the entry label.
func (h *history) stepBack() (string, bool) {
	e, ok := pop(&h.undo)
	if !ok {
		return "", false
	}
	inv := e.apply()
	inv.label = e.label
	h.redo = append(h.redo, inv)
	return e.label, true
}

// stepForward runs the newest redo entry and moves its inverse back to the
// undo stack without touching the rest of the redo stack.
func (h *history) stepForward() (string, bool) {
	e, ok := pop(&h.redo)
	if !ok {
		return "", false
	}
	inv := e.apply()
	inv.label = e.label
	h.undo = append(h.undo, inv)
	return e.label, true
}

func (h *history) canUndo() bool { return len(h.undo) > 0 }
func (h *history) canRedo() bool { return len(h.redo) > 0 }

func (h *history) undoLabel() string { return top(h.undo) }
func (h *history) redoLabel() string { return top(h.redo) }

// reset drops every entry.
func (h *history) reset() {
	h.undo = nil
	h.redo = nil
}

func pop(stack *[]entry) (entry, bool) {
	s := *stack
	if len(s) == 0 {
		return entry{}, false
	}
	e := s[len(s)-1]
	s[len(s)-1] = entry{}
	*stack = s[:len(s)-1]
	return e, true
}

func top(stack []entry) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].label
}
