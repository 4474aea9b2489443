// Package plugintest provides an in-memory EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/fidelity"
	"github.com/bethropolis/mathtag/internal/markup"
	"github.com/bethropolis/mathtag/internal/plugin"
	"github.com/bethropolis/mathtag/internal/theme"
)

var _ plugin.EditorAPI = (*API)(nil)

// API records what plugins do through the EditorAPI.
type API struct {
	mu sync.Mutex

	Original []string
	Edited   []string
	Current  int
	Path     string
	Dirty    bool

	ExportErr error
	Exports   []string // Paths passed to Export
	Messages  []string
	Commands  map[string]plugin.CommandFunc
	Events    *event.Manager
	Theme     *theme.Theme
}

// New returns a fake session over the given sentences, unedited.
func New(sentences ...string) *API {
	return &API{
		Original: append([]string(nil), sentences...),
		Edited:   append([]string(nil), sentences...),
		Commands: make(map[string]plugin.CommandFunc),
		Events:   event.NewManager(),
		Theme:    &theme.SlateDark,
	}
}

// SetDirty marks the session as having unexported changes.
func (a *API) SetDirty(dirty bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Dirty = dirty
}

// ExportCalls returns how many times Export ran.
func (a *API) ExportCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.Exports)
}

// LastMessage returns the latest status message, or "".
func (a *API) LastMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.Messages) == 0 {
		return ""
	}
	return a.Messages[len(a.Messages)-1]
}

// Run executes a registered command.
func (a *API) Run(name string, args ...string) error {
	a.mu.Lock()
	cmd, ok := a.Commands[name]
	a.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return cmd(args)
}

func (a *API) SentenceCount() int { return len(a.Edited) }

func (a *API) OriginalSentences() []string { return append([]string(nil), a.Original...) }

func (a *API) EditedSentences() []string { return append([]string(nil), a.Edited...) }

func (a *API) CurrentSentence() int { return a.Current }

func (a *API) SourcePath() string { return a.Path }

func (a *API) IsModified() bool {
	for i := range a.Edited {
		if a.Edited[i] != a.Original[i] {
			return true
		}
	}
	return false
}

func (a *API) HasUnexportedChanges() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Dirty
}

func (a *API) Score() fidelity.Report { return fidelity.Score(a.Original, a.Edited) }

func (a *API) ExportText() string {
	var out string
	for _, s := range a.Edited {
		if !markup.HasMarker(s) {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += s
	}
	return out
}

func (a *API) Export(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Exports = append(a.Exports, path)
	if a.ExportErr != nil {
		return a.ExportErr
	}
	a.Dirty = false
	return nil
}

func (a *API) DispatchEvent(eventType event.Type, data interface{}) {
	a.Events.Dispatch(eventType, data)
}

func (a *API) SubscribeEvent(eventType event.Type, handler event.Handler) {
	a.Events.Subscribe(eventType, handler)
}

func (a *API) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.Commands[name] = cmdFunc
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
}

func (a *API) GetThemeStyle(styleName string) tcell.Style { return a.Theme.GetStyle(styleName) }

func (a *API) SetTheme(name string) error {
	for _, th := range theme.Builtins() {
		if th.Name == name {
			a.Theme = th
			return nil
		}
	}
	return fmt.Errorf("theme '%s' not found", name)
}

func (a *API) GetTheme() *theme.Theme { return a.Theme }

func (a *API) ListThemes() []string {
	var names []string
	for _, th := range theme.Builtins() {
		names = append(names, th.Name)
	}
	return names
}
