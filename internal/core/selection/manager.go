package selection

import (
	"github.com/bethropolis/mathtag/internal/logger"
)

// State is the keyboard selection mode.
type State int

const (
	Idle          State = iota // Cursor rests on a token
	TokenSelected              // A token is picked; cursor is an insertion slot
)

func (s State) String() string {
	if s == TokenSelected {
		return "PICKED"
	}
	return "IDLE"
}

// Manager handles keyboard selection over the viewed sentence's tokens.
type Manager struct {
	editor EditorInterface

	cursor int // Token index when idle, insertion slot when picked
	source int // Picked token index, -1 when idle
}

// EditorInterface defines what the selection manager needs from the editor.
type EditorInterface interface {
	TokenCount() int // Tokens in the viewed sentence
}

// NewManager creates a new selection manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{
		editor: editor,
		cursor: 0,
		source: -1,
	}
}

// State returns the current selection mode.
func (m *Manager) State() State {
	if m.source >= 0 {
		return TokenSelected
	}
	return Idle
}

// Cursor returns the cursor index.
func (m *Manager) Cursor() int {
	return m.cursor
}

// Source returns the picked token index, if any.
func (m *Manager) Source() (int, bool) {
	return m.source, m.source >= 0
}

// maxCursor is the last valid cursor value for the current state.
func (m *Manager) maxCursor() int {
	n := m.editor.TokenCount()
	if m.State() == TokenSelected {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// SetCursor places the cursor, clamped to the valid range.
func (m *Manager) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if hi := m.maxCursor(); i > hi {
		i = hi
	}
	m.cursor = i
}

// MoveCursor shifts the cursor by delta, clamped.
func (m *Manager) MoveCursor(delta int) {
	m.SetCursor(m.cursor + delta)
}

// Pick selects the token under the cursor. Returns false if there is nothing to pick
// or a token is already picked.
func (m *Manager) Pick() bool {
	if m.State() == TokenSelected || m.editor.TokenCount() == 0 {
		return false
	}
	m.source = m.cursor
	logger.DebugTagf("core", "Selection Manager: Picked token %d", m.source)
	return true
}

// Drop ends a pick and returns the source token and target slot.
func (m *Manager) Drop() (source, target int, ok bool) {
	if m.State() != TokenSelected {
		return 0, 0, false
	}
	source, target = m.source, m.cursor
	m.source = -1
	logger.DebugTagf("core", "Selection Manager: Drop %d -> slot %d", source, target)
	return source, target, true
}

// Cancel abandons a pick and returns the cursor to the picked token.
func (m *Manager) Cancel() {
	if m.source >= 0 {
		logger.DebugTagf("core", "Selection Manager: Cancelled pick of %d", m.source)
		m.cursor = m.source
	}
	m.source = -1
	m.SetCursor(m.cursor)
}

// Reset returns to Idle with the cursor at i (clamped).
func (m *Manager) Reset(i int) {
	m.source = -1
	m.SetCursor(i)
}
