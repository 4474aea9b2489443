// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Session events
	TypeSentencesLoaded  // A new sentence set replaced the session
	TypeSentenceEdited   // A move or delete rewrote one sentence
	TypeSentenceChanged  // The viewed sentence changed
	TypeSelectionChanged // Keyboard cursor or pick state changed
	TypeHistoryUndone    // An undo restored a snapshot
	TypeExported         // The export blob was written or copied

	// Input events
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeSentencesLoaded:
		return "SentencesLoaded"
	case TypeSentenceEdited:
		return "SentenceEdited"
	case TypeSentenceChanged:
		return "SentenceChanged"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeHistoryUndone:
		return "HistoryUndone"
	case TypeExported:
		return "Exported"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// SentencesLoadedData describes a freshly loaded set.
type SentencesLoadedData struct {
	SessionID string
	Source    string // File path, empty for in-memory sets
	Count     int
}

// SentenceEditedData describes one applied mutation.
type SentenceEditedData struct {
	Sentence int    // Index in the set
	Action   string // "move" or "delete"
	Text     string // The re-serialized sentence
}

// SentenceChangedData carries the newly viewed sentence.
type SentenceChangedData struct {
	Sentence int
}

// SelectionChangedData carries the keyboard selection.
type SelectionChangedData struct {
	Cursor int
	Picked bool
}

// HistoryUndoneData reports what was restored.
type HistoryUndoneData struct {
	Sentence int
	Depth    int // Snapshots left
}

// ExportedData reports an export.
type ExportedData struct {
	Target    string // File path or "clipboard"
	Sentences int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}

// ThemeChangedData carries the newly active theme name.
type ThemeChangedData struct {
	Name string
}
