package modehandler

import (
	"errors"

	"github.com/bethropolis/mathtag/internal/core"
	"github.com/bethropolis/mathtag/internal/core/text"
	"github.com/bethropolis/mathtag/internal/input"
	"github.com/bethropolis/mathtag/internal/logger"
)

// cursorEnd is clamped by the editor to the last token or slot.
const cursorEnd = int(^uint(0) >> 1)

// handleActionNormal executes one action against the editing session.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action
	actionProcessed := true

	switch action {
	case input.ActionEnterCommandMode:
		mh.cancelDrag()
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetCommandLine(":")
		mh.statusBar.SetEditorMode(ModeCommand.String())
		logger.DebugTagf("mode", "ModeHandler: Entering Command Mode")

	case input.ActionQuit:
		if mh.editor.HasUnexportedChanges() && !mh.forceQuitPending {
			mh.statusBar.SetTemporaryMessage("Unexported changes! Press q again or Ctrl+Q to quit anyway.")
			mh.forceQuitPending = true
			return true
		}
		mh.quit()
		return false
	case input.ActionForceQuit:
		mh.quit()
		return false

	case input.ActionExport:
		mh.reportError("Export", mh.host.Export(""))
	case input.ActionYank:
		mh.reportError("Yank", mh.host.Yank())

	case input.ActionUndo:
		mh.cancelDrag()
		if mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Undone (%d left)", mh.editor.UndoDepth())
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionScore:
		r := mh.editor.Score()
		mh.statusBar.SetTemporaryMessage("Markers: %d, moved: %d, removed: %d, accuracy %.1f%%",
			r.TotalMarkers, r.MovedMarkers, r.RemovedMarkers, r.Accuracy*100)

	case input.ActionCursorLeft:
		mh.editor.CursorLeft()
	case input.ActionCursorRight:
		mh.editor.CursorRight()
	case input.ActionCursorHome:
		mh.editor.SetCursor(0)
	case input.ActionCursorEnd:
		mh.editor.SetCursor(cursorEnd)
	case input.ActionPrevSentence:
		mh.cancelDrag()
		if !mh.editor.PrevSentence() {
			mh.statusBar.SetTemporaryMessage("Already at the first sentence")
		}
	case input.ActionNextSentence:
		mh.cancelDrag()
		if !mh.editor.NextSentence() {
			mh.statusBar.SetTemporaryMessage("Already at the last sentence")
		}

	case input.ActionPickDrop, input.ActionEnter:
		mh.pickOrDrop()
	case input.ActionEscape:
		switch {
		case mh.drag.active():
			mh.cancelDrag()
		case mh.isPicked():
			mh.editor.Cancel()
			mh.statusBar.SetTemporaryMessage("Move cancelled")
		default:
			mh.statusBar.ResetTemporaryMessage()
		}
	case input.ActionNudgeLeft:
		mh.nudge(-1)
	case input.ActionNudgeRight:
		mh.nudge(1)
	case input.ActionDeleteMarker, input.ActionBackspace:
		_, err := mh.editor.DeleteAtCursor()
		if errors.Is(err, text.ErrNotMarker) {
			mh.statusBar.SetTemporaryMessage("Only markers can be deleted")
		} else {
			mh.reportError("Delete", err)
		}

	default:
		// Unbound runes and unknown keys
		actionProcessed = false
	}

	if actionProcessed && action != input.ActionQuit {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

func (mh *ModeHandler) isPicked() bool {
	_, picked := mh.editor.PickedSource()
	return picked
}

func (mh *ModeHandler) pickOrDrop() {
	if !mh.isPicked() {
		if mh.editor.Pick() {
			mh.statusBar.SetTemporaryMessage("Picked; move to a slot and press space to drop")
		}
		return
	}
	res, err := mh.editor.Drop()
	if err != nil {
		mh.reportError("Move", err)
		return
	}
	if !res.Changed {
		mh.statusBar.SetTemporaryMessage("Token left in place")
	}
}

func (mh *ModeHandler) nudge(dir int) {
	_, err := mh.editor.Nudge(dir)
	if errors.Is(err, core.ErrPickActive) {
		mh.statusBar.SetTemporaryMessage("Drop or cancel the picked token first")
		return
	}
	mh.reportError("Nudge", err)
}

// reportError shows a failed operation on the status bar. A nil error is ignored.
func (mh *ModeHandler) reportError(op string, err error) {
	if err == nil {
		return
	}
	logger.Warnf("ModeHandler: %s failed: %v", op, err)
	mh.statusBar.SetTemporaryMessage("%s failed: %v", op, err)
}
