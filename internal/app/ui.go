package app

import (
	"github.com/bethropolis/mathtag/internal/config"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/statusbar"
	"github.com/bethropolis/mathtag/internal/theme"
	"github.com/bethropolis/mathtag/internal/tui"
)

// statusBarConfig derives status bar styles from a theme.
func statusBarConfig(th *theme.Theme) statusbar.Config {
	return statusbar.Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleModified:  th.GetStyle(theme.StyleStatusBarModified),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StylePicked:    th.GetStyle(theme.StyleStatusBarPicked),
		StyleCommand:   th.GetStyle(theme.StyleStatusBarCommand),
		MessageTimeout: config.MessageTimeout,
	}
}

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	currentTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	statusBarHeight := a.cfg.Editor.StatusBarHeight

	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), StatusBarHeight: %d", width, height, statusBarHeight)

	a.tuiManager.Clear()
	a.layout = tui.DrawSession(a.tuiManager, a.currentView(), currentTheme, statusBarHeight)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// currentView snapshots what DrawSession needs.
func (a *App) currentView() tui.View {
	cur := a.editor.Current()
	cursor, picked := a.editor.Cursor()
	source := -1
	if picked {
		source, _ = a.editor.PickedSource()
	}
	dragSource, dropTarget := a.modeHandler.DragView()

	v := tui.View{
		Sentence:   cur,
		Sentences:  a.editor.SentenceCount(),
		Result:     a.editor.CurrentText(),
		Tokens:     a.editor.Tokens(),
		Cursor:     cursor,
		Picked:     picked,
		Source:     source,
		DragSource: dragSource,
		DropTarget: dropTarget,
	}
	if original := a.editor.Original(); cur < len(original) {
		v.Original = original[cur]
	}
	return v
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	cursor, picked := a.editor.Cursor()
	a.statusBar.SetInfo(statusbar.Info{
		FilePath:  a.editor.Source(),
		Sentence:  a.editor.Current(),
		Sentences: a.editor.SentenceCount(),
		Cursor:    cursor,
		Tokens:    a.editor.TokenCount(),
		Picked:    picked,
		UndoDepth: a.editor.UndoDepth(),
		Accuracy:  a.accuracy,
		Modified:  a.editor.IsModified(),
	})
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
}

// SetStatusMessage shows a temporary message on the status bar.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
