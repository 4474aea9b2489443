package app

import (
	"context"

	"github.com/bethropolis/mathtag/internal/config"
	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/logger"
)

// Export writes the sentences that still carry a marker to path, or to the configured
// export path when path is empty. Safe to call from plugin goroutines; an edit made while
// the file is written keeps the session marked as changed.
func (a *App) Export(path string) error {
	a.exportMu.Lock()
	defer a.exportMu.Unlock()

	exp := a.editor.PrepareExport()
	count := exp.Count

	ctx, cancel := context.WithTimeout(context.Background(), config.ExportTimeout)
	defer cancel()
	if err := a.buffer.Export(ctx, path, exp.Text); err != nil {
		return err
	}
	if !a.editor.MarkExported(exp.Revision) {
		logger.Debugf("App: Set changed during export, still unexported")
	}

	target := a.buffer.ExportPath()
	a.statusBar.SetTemporaryMessage("Exported %d sentence(s) to %s", count, target)
	a.eventManager.Dispatch(event.TypeExported, event.ExportedData{Target: target, Sentences: count})
	a.requestRedraw()
	return nil
}

// Yank copies the export blob to the clipboard.
func (a *App) Yank() error {
	exp := a.editor.PrepareExport()
	count := exp.Count
	if err := a.clipboard.Copy(exp.Text); err != nil {
		// The internal register still holds the text
		logger.Warnf("App: %v", err)
		return err
	}
	a.statusBar.SetTemporaryMessage("Copied %d sentence(s) to clipboard", count)
	a.eventManager.Dispatch(event.TypeExported, event.ExportedData{Target: "clipboard", Sentences: count})
	return nil
}

// Undo reverts the most recent edit.
func (a *App) Undo() bool {
	return a.editor.Undo()
}

// GotoSentence views sentence index (0-based).
func (a *App) GotoSentence(index int) error {
	return a.editor.GotoSentence(index)
}

// Quit ends the session. Without force it refuses while there are unexported changes.
func (a *App) Quit(force bool) error {
	return a.modeHandler.RequestQuit(force)
}
