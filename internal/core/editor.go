// internal/core/editor.go
package core

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bethropolis/mathtag/internal/core/history"
	"github.com/bethropolis/mathtag/internal/core/selection"
	"github.com/bethropolis/mathtag/internal/core/text"
	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/fidelity"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/markup"
)

var (
	// ErrNoSentences is returned by operations that need a loaded sentence set.
	ErrNoSentences = errors.New("no sentences loaded")
	// ErrNothingPicked is returned by Drop when no token is picked.
	ErrNothingPicked = errors.New("no token picked")
	// ErrPickActive is returned by Nudge while a token is picked.
	ErrPickActive = errors.New("a token is already picked")
	// ErrInvalidIndex is the engine's range error, for callers outside core.
	ErrInvalidIndex = text.ErrInvalidIndex
)

// Editor is one editing session: the immutable original set, the edited working copy, the
// viewed sentence, keyboard selection and the undo stack.
type Editor struct {
	mu sync.RWMutex

	original []string
	edited   []string
	current  int
	source   string // Where the set came from, for events and status
	session  string

	dirty    bool   // Changed since load or the last export
	revision uint64 // Bumped by every mutation and load

	history      *history.Manager
	selection    *selection.Manager
	eventManager *event.Manager
}

// unlockedView gives the selection manager token counts without re-entering the editor lock.
type unlockedView struct{ e *Editor }

func (v unlockedView) TokenCount() int { return v.e.tokenCount() }

// NewEditor creates an empty session. historyLimit <= 0 keeps every snapshot.
func NewEditor(historyLimit int) *Editor {
	e := &Editor{
		history: history.NewManager(historyLimit),
	}
	e.selection = selection.NewManager(unlockedView{e})
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, possibly nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// GetHistoryManager exposes the undo stack for status display.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.history
}

// dispatch must be called without holding e.mu; handlers may call back into the editor.
func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// Load replaces the session with a new sentence set. The undo stack is cleared.
func (e *Editor) Load(sentences []string, source string) {
	e.mu.Lock()
	e.original = append([]string(nil), sentences...)
	e.edited = append([]string(nil), sentences...)
	e.current = 0
	e.source = source
	e.session = uuid.NewString()
	e.dirty = false
	e.revision++
	e.history.Clear()
	e.selection.Reset(0)
	data := event.SentencesLoadedData{SessionID: e.session, Source: source, Count: len(sentences)}
	e.mu.Unlock()

	logger.Infof("Editor: Loaded %d sentence(s) from %q (session %s)", data.Count, source, data.SessionID)
	e.dispatch(event.TypeSentencesLoaded, data)
}

// SessionID identifies the current load.
func (e *Editor) SessionID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session
}

// Source returns the path the set was loaded from.
func (e *Editor) Source() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.source
}

// Original returns a copy of the original sentences.
func (e *Editor) Original() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.original...)
}

// Edited returns a copy of the edited sentences.
func (e *Editor) Edited() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.edited...)
}

// SentenceCount returns the number of loaded sentences.
func (e *Editor) SentenceCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.edited)
}

// Current returns the viewed sentence index.
func (e *Editor) Current() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// CurrentText returns the viewed edited sentence, or "" when nothing is loaded.
func (e *Editor) CurrentText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.edited) == 0 {
		return ""
	}
	return e.edited[e.current]
}

// Tokens tokenizes the viewed sentence afresh.
func (e *Editor) Tokens() markup.Sequence {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tokens()
}

func (e *Editor) tokens() markup.Sequence {
	if len(e.edited) == 0 {
		return nil
	}
	return markup.Tokenize(e.edited[e.current])
}

// TokenCount returns the number of tokens in the viewed sentence.
func (e *Editor) TokenCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tokenCount()
}

func (e *Editor) tokenCount() int {
	return len(e.tokens())
}

// Cursor returns the keyboard cursor and whether a token is picked.
func (e *Editor) Cursor() (cursor int, picked bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, picked = e.selection.Source()
	return e.selection.Cursor(), picked
}

// PickedSource returns the picked token index, if any.
func (e *Editor) PickedSource() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selection.Source()
}

// SelectionState returns the keyboard selection mode.
func (e *Editor) SelectionState() selection.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selection.State()
}

// IsModified reports whether any edited sentence differs from its original.
func (e *Editor) IsModified() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i := range e.edited {
		if e.edited[i] != e.original[i] {
			return true
		}
	}
	return false
}

// HasUnexportedChanges reports whether the set changed since load or the last export.
func (e *Editor) HasUnexportedChanges() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dirty
}

// Export is the export blob taken under one lock with the revision it reflects.
type Export struct {
	Text     string
	Count    int // Sentences included in Text
	Revision uint64
}

// PrepareExport captures the export blob and the current revision together.
func (e *Editor) PrepareExport() Export {
	e.mu.RLock()
	defer e.mu.RUnlock()
	kept := markedSentences(e.edited)
	return Export{Text: strings.Join(kept, "\n"), Count: len(kept), Revision: e.revision}
}

// MarkExported clears the unexported-changes flag if nothing changed since revision was
// captured. Returns false when a later edit keeps the set dirty.
func (e *Editor) MarkExported(revision uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if revision != e.revision {
		return false
	}
	e.dirty = false
	return true
}

// Score compares the edited set against the original.
func (e *Editor) Score() fidelity.Report {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fidelity.Score(e.original, e.edited)
}

// ExportText joins with newlines the edited sentences that still contain a marker.
func (e *Editor) ExportText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return strings.Join(markedSentences(e.edited), "\n")
}

// ExportCount returns how many sentences ExportText would include.
func (e *Editor) ExportCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(markedSentences(e.edited))
}

func markedSentences(sentences []string) []string {
	kept := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if markup.HasMarker(s) {
			kept = append(kept, s)
		}
	}
	return kept
}
