package app

import (
	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/theme"
)

// subscribeEvents wires the app's reactions to session events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeSentencesLoaded, a.handleSessionChanged)
	a.eventManager.Subscribe(event.TypeSentenceEdited, a.handleSessionChanged)
	a.eventManager.Subscribe(event.TypeHistoryUndone, a.handleSessionChanged)
	a.eventManager.Subscribe(event.TypeSentenceChanged, a.handleViewChanged)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleViewChanged)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

// handleSessionChanged refreshes the cached accuracy after the edited set changes.
func (a *App) handleSessionChanged(e event.Event) bool {
	a.accuracy = a.editor.Score().Accuracy
	if data, ok := e.Data.(event.SentenceEditedData); ok {
		logger.DebugTagf("app", "App: Sentence %d %s -> %q", data.Sentence, data.Action, data.Text)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleViewChanged(e event.Event) bool {
	a.requestRedraw()
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	th := a.themeManager.Current()
	a.statusBar.SetConfig(statusBarConfig(th))
	a.tuiManager.SetStyle(th.GetStyle(theme.StyleDefault))
	a.requestRedraw()
	return false
}
