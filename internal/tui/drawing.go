// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/mathtag/internal/markup"
	"github.com/bethropolis/mathtag/internal/theme"
)

// Rows used above the token strip.
const (
	headerRow   = 0
	resultRow   = 1
	originalRow = 2
	stripRow    = 4
	marginX     = 1
)

// View is everything needed to draw one frame of the session.
type View struct {
	Sentence  int // 0-based
	Sentences int
	Result    string // Serialized edited sentence
	Original  string
	Tokens    markup.Sequence

	Cursor int  // Token index when idle, slot when picked
	Picked bool // Keyboard pick active
	Source int  // Picked token, valid when Picked

	DragSource int // Token under a pointer drag, -1 when none
	DropTarget int // Slot under the pointer during a drag, -1 when none
}

// DrawSession renders the header, result line, original line and token strip into the
// area above the status bar. It returns the strip layout for pointer hit-testing.
func DrawSession(t *TUI, v View, th *theme.Theme, statusBarHeight int) Layout {
	screen := t.GetScreen()
	width, height := screen.Size()
	bottom := height - statusBarHeight
	if width <= 0 || bottom <= 0 {
		return Layout{}
	}

	labelStyle := th.GetStyle(theme.StyleLabel)
	if v.Sentences == 0 {
		drawText(screen, marginX, headerRow, width, "No sentences loaded.", labelStyle)
		return Layout{}
	}

	header := fmt.Sprintf("Sentence %d of %d", v.Sentence+1, v.Sentences)
	drawText(screen, marginX, headerRow, width, header, labelStyle)

	x := drawText(screen, marginX, resultRow, width, "Result:   ", labelStyle)
	drawText(screen, x, resultRow, width, v.Result, th.GetStyle(theme.StyleResultLine))
	if originalRow < bottom {
		x = drawText(screen, marginX, originalRow, width, "Original: ", labelStyle)
		drawText(screen, x, originalRow, width, v.Original, labelStyle)
	}

	if stripRow >= bottom {
		return Layout{}
	}
	layout := ComputeLayout(v.Tokens, marginX, stripRow, width-2*marginX)
	drawStrip(screen, layout, v, th, bottom)
	return layout
}

func drawStrip(screen tcell.Screen, l Layout, v View, th *theme.Theme, bottom int) {
	cursorStyle := th.GetStyle(theme.StyleCursor)
	pickedStyle := th.GetStyle(theme.StylePicked)
	slotStyle := th.GetStyle(theme.StyleDropSlot)

	for _, b := range l.Boxes {
		if b.Y >= bottom {
			break
		}
		style := th.TokenStyle(v.Tokens[b.Index].Kind)
		switch {
		case v.Picked && b.Index == v.Source, b.Index == v.DragSource:
			style = pickedStyle
		case !v.Picked && v.DragSource < 0 && b.Index == v.Cursor:
			style = cursorStyle
		}
		drawText(screen, b.X, b.Y, b.X+b.Width, b.Label, style)
	}

	slot := -1
	switch {
	case v.DragSource >= 0:
		slot = v.DropTarget
	case v.Picked:
		slot = v.Cursor
	}
	if s, ok := l.SlotPos(slot); ok && s.Y < bottom {
		screen.SetContent(s.X, s.Y, '│', nil, slotStyle)
	}
}

// drawText writes text from x, stopping before maxX, and returns the next free column.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}
