// internal/core/navigation.go
package core

import (
	"fmt"

	"github.com/bethropolis/mathtag/internal/event"
)

// CursorLeft moves the keyboard cursor one token or slot left.
func (e *Editor) CursorLeft() {
	e.moveCursor(-1)
}

// CursorRight moves the keyboard cursor one token or slot right.
func (e *Editor) CursorRight() {
	e.moveCursor(1)
}

// SetCursor places the keyboard cursor, clamped to the viewed sentence.
func (e *Editor) SetCursor(i int) {
	e.mu.Lock()
	e.selection.SetCursor(i)
	data := e.selectionData()
	e.mu.Unlock()
	e.dispatch(event.TypeSelectionChanged, data)
}

func (e *Editor) moveCursor(delta int) {
	e.mu.Lock()
	e.selection.MoveCursor(delta)
	data := e.selectionData()
	e.mu.Unlock()
	e.dispatch(event.TypeSelectionChanged, data)
}

func (e *Editor) selectionData() event.SelectionChangedData {
	_, picked := e.selection.Source()
	return event.SelectionChangedData{Cursor: e.selection.Cursor(), Picked: picked}
}

// NextSentence views the following sentence, carrying the cursor over clamped.
// Returns false at the last sentence.
func (e *Editor) NextSentence() bool {
	return e.stepSentence(1)
}

// PrevSentence views the preceding sentence, carrying the cursor over clamped.
// Returns false at the first sentence.
func (e *Editor) PrevSentence() bool {
	return e.stepSentence(-1)
}

func (e *Editor) stepSentence(delta int) bool {
	e.mu.Lock()
	next := e.current + delta
	if next < 0 || next >= len(e.edited) {
		e.mu.Unlock()
		return false
	}
	cursor := e.selection.Cursor()
	e.current = next
	e.selection.Reset(cursor)
	e.mu.Unlock()

	e.dispatch(event.TypeSentenceChanged, event.SentenceChangedData{Sentence: next})
	return true
}

// GotoSentence views sentence i with the cursor on its first token.
func (e *Editor) GotoSentence(i int) error {
	e.mu.Lock()
	if err := e.checkSentence(i); err != nil {
		e.mu.Unlock()
		return err
	}
	e.current = i
	e.selection.Reset(0)
	e.mu.Unlock()

	e.dispatch(event.TypeSentenceChanged, event.SentenceChangedData{Sentence: i})
	return nil
}

// Pick selects the token under the cursor for a keyboard move.
func (e *Editor) Pick() bool {
	e.mu.Lock()
	ok := e.selection.Pick()
	data := e.selectionData()
	e.mu.Unlock()

	if ok {
		e.dispatch(event.TypeSelectionChanged, data)
	}
	return ok
}

// Drop moves the picked token to the slot under the cursor.
func (e *Editor) Drop() (Result, error) {
	e.mu.Lock()
	source, target, ok := e.selection.Drop()
	if !ok {
		e.mu.Unlock()
		return Result{}, ErrNothingPicked
	}
	res, data, err := e.applyMove(e.current, source, target)
	if err != nil {
		e.selection.Reset(source)
	}
	e.mu.Unlock()

	if err == nil && res.Changed {
		e.dispatch(event.TypeSentenceEdited, data)
	}
	return res, err
}

// Cancel abandons a pick, returning the cursor to the picked token.
func (e *Editor) Cancel() {
	e.mu.Lock()
	e.selection.Cancel()
	data := e.selectionData()
	e.mu.Unlock()
	e.dispatch(event.TypeSelectionChanged, data)
}

// DeleteAtCursor deletes the marker under the cursor. While a token is picked it deletes
// the picked token and ends the pick.
func (e *Editor) DeleteAtCursor() (Result, error) {
	e.mu.Lock()
	index := e.selection.Cursor()
	if source, picked := e.selection.Source(); picked {
		index = source
		e.selection.Cancel()
	}
	res, data, err := e.applyDelete(e.current, index)
	e.mu.Unlock()

	if err == nil {
		e.dispatch(event.TypeSentenceEdited, data)
	}
	return res, err
}

// Nudge moves the token under the cursor one position left (dir < 0) or right (dir > 0).
// At either end of the sentence it is a no-op.
func (e *Editor) Nudge(dir int) (Result, error) {
	e.mu.Lock()
	if _, picked := e.selection.Source(); picked {
		e.mu.Unlock()
		return Result{}, ErrPickActive
	}
	if err := e.checkSentence(e.current); err != nil {
		e.mu.Unlock()
		return Result{}, err
	}

	c := e.selection.Cursor()
	target := c + 2
	if dir < 0 {
		target = c - 1
	}
	if dir == 0 || target < 0 || target > e.tokenCount() {
		e.mu.Unlock()
		return Result{Sentence: e.current, Index: c}, nil
	}

	res, data, err := e.applyMove(e.current, c, target)
	e.mu.Unlock()

	if err != nil {
		return res, fmt.Errorf("nudge: %w", err)
	}
	if res.Changed {
		e.dispatch(event.TypeSentenceEdited, data)
	}
	return res, nil
}

// UndoDepth returns the number of snapshots available to Undo.
func (e *Editor) UndoDepth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.Len()
}
