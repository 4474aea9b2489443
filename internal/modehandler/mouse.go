package modehandler

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/tui"
)

// dragState tracks a pointer drag from a token to an insertion slot.
type dragState struct {
	source, target int
	pressX, pressY int
	moved          bool
}

func noDrag() dragState {
	return dragState{source: -1, target: -1}
}

func (d dragState) active() bool {
	return d.source >= 0
}

func (mh *ModeHandler) cancelDrag() {
	if mh.drag.active() {
		logger.DebugTagf("mouse", "ModeHandler: Drag of token %d cancelled", mh.drag.source)
	}
	mh.drag = noDrag()
}

// DragView returns the dragged token and the slot under the pointer, -1 when unset.
func (mh *ModeHandler) DragView() (source, target int) {
	if !mh.drag.active() {
		return -1, -1
	}
	return mh.drag.source, mh.drag.target
}

// HandleMouseEvent drives drag-and-drop on the token strip. Pressing the primary button
// on a token starts a drag, motion tracks the slot under the pointer and releasing
// moves the token there. A press and release without motion only selects the token.
// The wheel steps between sentences. Returns true when a redraw is needed.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse, layout tui.Layout) bool {
	if mh.currentMode != ModeNormal {
		return false
	}
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		mh.cancelDrag()
		return mh.editor.PrevSentence()
	case buttons&tcell.WheelDown != 0:
		mh.cancelDrag()
		return mh.editor.NextSentence()

	case buttons&tcell.Button1 != 0:
		if mh.drag.active() {
			return mh.dragTo(x, y, layout)
		}
		idx, ok := layout.TokenAt(x, y)
		if !ok {
			return false
		}
		if mh.isPicked() {
			mh.editor.Cancel()
		}
		mh.drag = dragState{source: idx, target: -1, pressX: x, pressY: y}
		mh.editor.SetCursor(idx)
		logger.DebugTagf("mouse", "ModeHandler: Drag started on token %d", idx)
		return true

	case buttons == tcell.ButtonNone && mh.drag.active():
		return mh.release()
	}
	return false
}

func (mh *ModeHandler) dragTo(x, y int, layout tui.Layout) bool {
	if x != mh.drag.pressX || y != mh.drag.pressY {
		mh.drag.moved = true
	}
	slot, ok := layout.SlotAt(x, y)
	if !ok {
		slot = -1
	}
	if slot == mh.drag.target {
		return false
	}
	mh.drag.target = slot
	return true
}

func (mh *ModeHandler) release() bool {
	d := mh.drag
	mh.drag = noDrag()
	if !d.moved || d.target < 0 {
		return true
	}

	res, err := mh.editor.ApplyMove(mh.editor.Current(), d.source, d.target)
	if err != nil {
		mh.reportError("Move", err)
		return true
	}
	logger.DebugTagf("mouse", "ModeHandler: Dropped token %d at slot %d (changed=%v)", d.source, d.target, res.Changed)
	return true
}
