// Package text holds the positional operations applied to a sentence's token sequence.
package text

import (
	"errors"
	"fmt"

	"github.com/bethropolis/mathtag/internal/markup"
)

var (
	// ErrInvalidIndex is returned for a source, target or delete index outside its range.
	ErrInvalidIndex = errors.New("index out of range")
	// ErrNoOpMove is returned when source and target are the same slot.
	ErrNoOpMove = errors.New("move has no effect")
	// ErrNotMarker is returned when deleting a token that is not a marker.
	ErrNotMarker = errors.New("only marker tokens can be deleted")
)

// Move relocates the token at source to the insertion point target.
//
// Insertion points run from 0 to len(seq) inclusive and are expressed in pre-removal
// coordinates. The input sequence is not modified. The returned index is where the
// token ended up.
func Move(seq markup.Sequence, source, target int) (markup.Sequence, int, error) {
	if source < 0 || source >= len(seq) {
		return seq, source, fmt.Errorf("move source %d of %d tokens: %w", source, len(seq), ErrInvalidIndex)
	}
	if target < 0 || target > len(seq) {
		return seq, source, fmt.Errorf("move target %d of %d slots: %w", target, len(seq)+1, ErrInvalidIndex)
	}
	if source == target {
		return seq, source, ErrNoOpMove
	}

	moving := seq[source]
	out := make(markup.Sequence, 0, len(seq))
	out = append(out, seq[:source]...)
	out = append(out, seq[source+1:]...)

	if source < target {
		target--
	}
	out = append(out, markup.Token{})
	copy(out[target+1:], out[target:])
	out[target] = moving
	return out, target, nil
}

// Delete removes the marker token at index. The returned index is the token to select
// afterwards, max(0, index-1).
func Delete(seq markup.Sequence, index int) (markup.Sequence, int, error) {
	if index < 0 || index >= len(seq) {
		return seq, index, fmt.Errorf("delete index %d of %d tokens: %w", index, len(seq), ErrInvalidIndex)
	}
	if !seq[index].IsMarker() {
		return seq, index, fmt.Errorf("delete %s token %q: %w", seq[index].Kind, seq[index].Text, ErrNotMarker)
	}

	out := make(markup.Sequence, 0, len(seq)-1)
	out = append(out, seq[:index]...)
	out = append(out, seq[index+1:]...)

	sel := index - 1
	if sel < 0 {
		sel = 0
	}
	return out, sel, nil
}
