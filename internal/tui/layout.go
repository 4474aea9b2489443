// internal/tui/layout.go
package tui

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/mathtag/internal/markup"
)

// Box is where one token is drawn.
type Box struct {
	Index int
	X, Y  int
	Width int
	Label string
}

// Slot is the column between tokens that stands for an insertion point.
type Slot struct {
	Index int
	X, Y  int
}

// Layout positions a token strip. Slot k sits just left of token k; slot len(tokens)
// follows the last token.
type Layout struct {
	Boxes []Box
	Slots []Slot
	Rows  int
}

// TokenLabel is the visible text for a token. Whitespace becomes a placeholder glyph.
func TokenLabel(tok markup.Token) string {
	if tok.Kind != markup.Whitespace {
		return tok.Text
	}
	switch tok.Text {
	case " ":
		return "·"
	case "\t":
		return "→"
	case "\n", "\r":
		return "↵"
	}
	return "␣"
}

// ComputeLayout lays tokens out left to right from (x0, y0), wrapping at token
// boundaries so no row is wider than width. A token wider than a whole row is clipped.
func ComputeLayout(seq markup.Sequence, x0, y0, width int) Layout {
	l := Layout{
		Boxes: make([]Box, 0, len(seq)),
		Slots: make([]Slot, 0, len(seq)+1),
	}
	if width <= 1 {
		return l
	}
	maxX := x0 + width
	x, y := x0, y0

	for i, tok := range seq {
		label := TokenLabel(tok)
		w := uniseg.StringWidth(label)
		// One column for the slot, then the token
		if x+1+w > maxX && x > x0 {
			x, y = x0, y+1
		}
		if x+1+w > maxX {
			w = maxX - x - 1
		}
		l.Slots = append(l.Slots, Slot{Index: i, X: x, Y: y})
		l.Boxes = append(l.Boxes, Box{Index: i, X: x + 1, Y: y, Width: w, Label: label})
		x += 1 + w
	}
	if x >= maxX {
		x, y = x0, y+1
	}
	l.Slots = append(l.Slots, Slot{Index: len(seq), X: x, Y: y})
	l.Rows = y - y0 + 1
	return l
}

// TokenAt returns the token drawn at (x, y).
func (l Layout) TokenAt(x, y int) (int, bool) {
	for _, b := range l.Boxes {
		if b.Y == y && x >= b.X && x < b.X+b.Width {
			return b.Index, true
		}
	}
	return -1, false
}

// SlotAt returns the insertion slot nearest to (x, y) on the same row. A point over the
// left half of a token maps to the slot before it, the right half to the slot after.
func (l Layout) SlotAt(x, y int) (int, bool) {
	for _, s := range l.Slots {
		if s.Y == y && s.X == x {
			return s.Index, true
		}
	}
	for _, b := range l.Boxes {
		if b.Y != y || x < b.X || x >= b.X+b.Width {
			continue
		}
		if 2*(x-b.X) < b.Width {
			return b.Index, true
		}
		return b.Index + 1, true
	}

	// Past the end of a row: the last slot on it
	best := -1
	for _, s := range l.Slots {
		if s.Y == y && s.X <= x {
			best = s.Index
		}
	}
	if best >= 0 {
		return best, true
	}
	return -1, false
}

// SlotPos returns where slot i is drawn.
func (l Layout) SlotPos(i int) (Slot, bool) {
	if i < 0 || i >= len(l.Slots) {
		return Slot{}, false
	}
	return l.Slots[i], true
}
