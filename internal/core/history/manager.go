package history

import (
	"sync"

	"github.com/bethropolis/mathtag/internal/logger"
)

// Manager is a LIFO stack of snapshots. A limit of zero keeps every entry.
type Manager struct {
	snapshots []Snapshot
	limit     int
	mutex     sync.Mutex
}

// NewManager creates a history manager. limit <= 0 means unbounded.
func NewManager(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{
		snapshots: make([]Snapshot, 0, 16),
		limit:     limit,
	}
}

// Record pushes a snapshot taken before a mutation.
func (m *Manager) Record(s Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.snapshots = append(m.snapshots, s)
	if m.limit > 0 && len(m.snapshots) > m.limit {
		// Oldest entries go first
		m.snapshots = append(m.snapshots[:0], m.snapshots[len(m.snapshots)-m.limit:]...)
	}

	logger.DebugTagf("history", "History: Recorded %v snapshot for sentence %d. Depth: %d", s.Type, s.Sentence, len(m.snapshots))
}

// Undo pops the most recent snapshot. ok is false when the stack is empty.
func (m *Manager) Undo() (Snapshot, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.snapshots) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return Snapshot{}, false
	}

	last := m.snapshots[len(m.snapshots)-1]
	m.snapshots[len(m.snapshots)-1] = Snapshot{}
	m.snapshots = m.snapshots[:len(m.snapshots)-1]

	logger.DebugTagf("history", "History: Undoing %v on sentence %d. Depth: %d", last.Type, last.Sentence, len(m.snapshots))
	return last, true
}

// Clear drops every snapshot. Call this when a new sentence set is loaded.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.snapshots = m.snapshots[:0]
	logger.DebugTagf("history", "History: Cleared.")
}

// CanUndo returns true if there is a snapshot to restore.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.snapshots) > 0
}

// Len returns the number of stored snapshots.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.snapshots)
}
