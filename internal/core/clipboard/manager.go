package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/mathtag/internal/logger"
)

// Manager holds an internal register and, when enabled, mirrors it to the system clipboard.
type Manager struct {
	mu        sync.Mutex
	register  string
	useSystem bool
	writeAll  func(string) error
}

// NewManager creates a clipboard manager. useSystem is ignored when no system clipboard
// utility is available.
func NewManager(useSystem bool) *Manager {
	if useSystem && sysclip.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Manager{
		useSystem: useSystem,
		writeAll:  sysclip.WriteAll,
	}
}

// Copy stores text in the register and, if enabled, on the system clipboard. The
// register is always updated, even when the system copy fails.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register = text
	logger.Debugf("ClipboardManager: Copied %d bytes", len(text))

	if !m.useSystem {
		return nil
	}
	if err := m.writeAll(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

// Contents returns the internal register.
func (m *Manager) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.register
}

// UsesSystem reports whether copies reach the system clipboard.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}
