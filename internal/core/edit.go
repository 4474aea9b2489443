// internal/core/edit.go
package core

import (
	"errors"
	"fmt"

	"github.com/bethropolis/mathtag/internal/core/history"
	"github.com/bethropolis/mathtag/internal/core/text"
	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/markup"
)

// Result describes an applied edit.
type Result struct {
	Sentence int  // Sentence the edit targeted
	Index    int  // Token to select afterwards
	Changed  bool // False for a no-op move
}

// ApplyMove moves the token at source to insertion slot target within a sentence.
// A move onto its own slot succeeds with Changed false and records nothing.
func (e *Editor) ApplyMove(sentence, source, target int) (Result, error) {
	e.mu.Lock()
	res, data, err := e.applyMove(sentence, source, target)
	e.mu.Unlock()

	if err == nil && res.Changed {
		e.dispatch(event.TypeSentenceEdited, data)
	}
	return res, err
}

// ApplyDelete removes the marker token at index within a sentence.
func (e *Editor) ApplyDelete(sentence, index int) (Result, error) {
	e.mu.Lock()
	res, data, err := e.applyDelete(sentence, index)
	e.mu.Unlock()

	if err == nil {
		e.dispatch(event.TypeSentenceEdited, data)
	}
	return res, err
}

// Undo restores the edited set from the most recent snapshot and returns the view to the
// sentence that was changed. Returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	snap, ok := e.history.Undo()
	if !ok {
		e.mu.Unlock()
		return false
	}
	e.edited = snap.Sentences
	e.current = snap.Sentence
	e.dirty = true
	e.revision++
	e.selection.Reset(snap.Cursor)
	data := event.HistoryUndoneData{Sentence: snap.Sentence, Depth: e.history.Len()}
	e.mu.Unlock()

	logger.DebugTagf("core", "Editor: Undid %v on sentence %d", snap.Type, snap.Sentence)
	e.dispatch(event.TypeHistoryUndone, data)
	return true
}

func (e *Editor) checkSentence(sentence int) error {
	if len(e.edited) == 0 {
		return ErrNoSentences
	}
	if sentence < 0 || sentence >= len(e.edited) {
		return fmt.Errorf("sentence %d of %d: %w", sentence, len(e.edited), text.ErrInvalidIndex)
	}
	return nil
}

// applyMove expects e.mu to be held.
func (e *Editor) applyMove(sentence, source, target int) (Result, event.SentenceEditedData, error) {
	var data event.SentenceEditedData
	if err := e.checkSentence(sentence); err != nil {
		return Result{}, data, err
	}

	seq := markup.Tokenize(e.edited[sentence])
	moved, at, err := text.Move(seq, source, target)
	if errors.Is(err, text.ErrNoOpMove) {
		if sentence == e.current {
			e.selection.Reset(source)
		}
		return Result{Sentence: sentence, Index: source}, data, nil
	}
	if err != nil {
		return Result{}, data, err
	}

	e.history.Record(history.NewSnapshot(history.MoveAction, e.edited, sentence, source))
	e.edited[sentence] = markup.Serialize(moved)
	e.dirty = true
	e.revision++
	at = relocate(moved, at, markup.Tokenize(e.edited[sentence]))
	if sentence == e.current {
		e.selection.Reset(at)
	}

	logger.DebugTagf("core", "Editor: Moved token %d -> slot %d in sentence %d", source, target, sentence)
	data = event.SentenceEditedData{Sentence: sentence, Action: "move", Text: e.edited[sentence]}
	return Result{Sentence: sentence, Index: at, Changed: true}, data, nil
}

// applyDelete expects e.mu to be held.
func (e *Editor) applyDelete(sentence, index int) (Result, event.SentenceEditedData, error) {
	var data event.SentenceEditedData
	if err := e.checkSentence(sentence); err != nil {
		return Result{}, data, err
	}

	seq := markup.Tokenize(e.edited[sentence])
	out, sel, err := text.Delete(seq, index)
	if err != nil {
		return Result{}, data, err
	}

	e.history.Record(history.NewSnapshot(history.DeleteAction, e.edited, sentence, index))
	e.edited[sentence] = markup.Serialize(out)
	e.dirty = true
	e.revision++
	if sentence == e.current {
		e.selection.Reset(sel)
	}

	logger.DebugTagf("core", "Editor: Deleted %s at %d in sentence %d", seq[index].Kind, index, sentence)
	data = event.SentenceEditedData{Sentence: sentence, Action: "delete", Text: e.edited[sentence]}
	return Result{Sentence: sentence, Index: sel, Changed: true}, data, nil
}

// relocate maps index i of seq onto the re-tokenized serialization of seq. Serializing
// inserts and collapses whitespace, so the token is found by its ordinal among tokens of
// the same kind. A token the serializer dropped or merged maps to the nearest position.
func relocate(seq markup.Sequence, i int, serialized markup.Sequence) int {
	if len(serialized) == 0 {
		return 0
	}
	kind := seq[i].Kind
	ordinal := 0
	for _, tok := range seq[:i] {
		if tok.Kind == kind {
			ordinal++
		}
	}
	if positions := serialized.Positions(kind); ordinal < len(positions) {
		return positions[ordinal]
	}
	return min(i, len(serialized)-1)
}
