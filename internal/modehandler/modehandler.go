// internal/modehandler/modehandler.go
package modehandler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/core"
	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/input"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/plugin" // For CommandFunc type
	"github.com/bethropolis/mathtag/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

// String returns the mode label shown on the status bar.
func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// Host performs the actions that reach outside the editing session.
type Host interface {
	// Export writes the export blob. An empty path means the configured one.
	Export(path string) error
	// Yank copies the export blob to the clipboard.
	Yank() error
}

// ModeHandler manages input modes, command execution, and pointer drags.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	host           Host
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	// Internal State
	currentMode      InputMode
	cmdBuffer        []rune
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
	drag             dragState
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Host           Host
	QuitSignal     chan<- struct{} // Closed once to signal quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.Host == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		host:           cfg.Host,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
		drag:           noDrag(),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	var actionProcessed bool
	switch mh.currentMode {
	case ModeNormal:
		actionProcessed = mh.handleActionNormal(actionEvent)
	case ModeCommand:
		actionProcessed = mh.handleActionCommand(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
	}

	return actionProcessed || mh.forceQuitPending
}

// quit closes the quit channel. Safe to call more than once.
func (mh *ModeHandler) quit() {
	mh.quitOnce.Do(func() {
		logger.Infof("ModeHandler: Quit requested")
		close(mh.quitSignal)
	})
}

// ErrUnexportedChanges is returned by RequestQuit when quitting would lose edits.
var ErrUnexportedChanges = errors.New("unexported changes (add ! to override)")

// RequestQuit ends the session. Without force it refuses while there are unexported changes.
func (mh *ModeHandler) RequestQuit(force bool) error {
	if !force && mh.editor.HasUnexportedChanges() {
		return ErrUnexportedChanges
	}
	mh.quit()
	return nil
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("mode", "ModeHandler: Registered command ':%s'", name)
	return nil
}

// HasCommand reports whether a command is registered.
func (mh *ModeHandler) HasCommand(name string) bool {
	_, ok := mh.commands[name]
	return ok
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command being typed, or "" outside command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}
