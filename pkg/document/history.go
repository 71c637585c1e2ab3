/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package document

// IEdit is an atomic, invertible mutation.
type IEdit interface {
	// Name returns the edit name shown in undo and redo affordances.
	Name() string

	// Inverse returns the edit that undoes this one.
	Inverse() IEdit

	// Apply performs the mutation. An edit captures everything it needs at
	// construction time, so applying cannot fail.
	Apply()
}

// EditHistory is a stack-based undo/redo log of committed edits.
//
// The history also tracks the saved state of whatever the edits mutate: the
// position in the undo timeline recorded by MarkSaved is compared to the
// current position, so undoing back to exactly the marked point reports
// saved again.
type EditHistory struct {
	undoStack []IEdit
	redoStack []IEdit
	// undo stack depth at the last MarkSaved, or -1 once a new edit has
	// made the marked point unreachable
	savedPos int
}

func NewEditHistory() *EditHistory {
	return &EditHistory{savedPos: 0}
}

// Append commits a new edit. The redo stack is cleared: edits reachable only
// by redo are abandoned, and if the saved point was among them it becomes
// unreachable.
func (h *EditHistory) Append(edit IEdit) {
	if h.savedPos > len(h.undoStack) {
		h.savedPos = -1
	}
	h.undoStack = append(h.undoStack, edit)
	h.redoStack = nil
}

// Undo applies the inverse of the most recent edit and moves that edit to
// the redo stack. Returns the inverse actually applied, or
// ErrNothingToUndoError on an empty history.
func (h *EditHistory) Undo() (IEdit, error) {
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndoError
	}
	edit := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	inverse := edit.Inverse()
	inverse.Apply()

	h.redoStack = append(h.redoStack, edit)
	return inverse, nil
}

// Redo replays the most recently undone edit. Returns the edit applied, or
// ErrNothingToRedoError when there is nothing to redo.
func (h *EditHistory) Redo() (IEdit, error) {
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedoError
	}
	edit := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	edit.Apply()

	h.undoStack = append(h.undoStack, edit)
	return edit, nil
}

// UndoName returns the name of the edit Undo would revert. The second
// result is false when the undo stack is empty.
func (h *EditHistory) UndoName() (string, bool) {
	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].Name(), true
}

// RedoName returns the name of the edit Redo would replay. The second
// result is false when the redo stack is empty.
func (h *EditHistory) RedoName() (string, bool) {
	if len(h.redoStack) == 0 {
		return "", false
	}
	return h.redoStack[len(h.redoStack)-1].Name(), true
}

// Saved reports whether the current position in the undo timeline is the
// one recorded by the last MarkSaved.
func (h *EditHistory) Saved() bool {
	return h.savedPos == len(h.undoStack)
}

// MarkSaved records the current position as the saved state.
func (h *EditHistory) MarkSaved() {
	h.savedPos = len(h.undoStack)
}
