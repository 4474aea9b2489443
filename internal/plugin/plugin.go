// internal/plugin/plugin.go
package plugin

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/fidelity"
	"github.com/bethropolis/mathtag/internal/theme"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words typed after the command name and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the session.
// Plugins read sentences and export; edits go through the editor only.
type EditorAPI interface {
	// --- Session Access (Read-Only) ---
	SentenceCount() int
	OriginalSentences() []string
	EditedSentences() []string
	CurrentSentence() int // 0-based
	SourcePath() string
	IsModified() bool
	HasUnexportedChanges() bool

	// --- Scoring & Export ---
	Score() fidelity.Report
	ExportText() string
	Export(path string) error // Empty path means the configured export path

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once after the session is set up.
	// Used for subscribing to events and registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the application is closing.
	Shutdown() error
}
