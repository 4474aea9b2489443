// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style // Modified indicator
	StyleMessage   tcell.Style // Temporary messages
	StylePicked    tcell.Style // Selection state while a token is picked
	StyleCommand   tcell.Style // Command-line input
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StylePicked:    tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// Info is the session state shown on the status line.
type Info struct {
	FilePath  string
	Sentence  int // 0-based
	Sentences int
	Cursor    int
	Tokens    int
	Picked    bool
	UndoDepth int
	Accuracy  float64
	Modified  bool
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	info       Info
	editorMode string

	tempMessage     string
	tempMessageTime time.Time
	commandLine     string
	commandActive   bool
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetConfig replaces styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetInfo updates the session state shown.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetCommandLine shows the command being typed. It replaces any message until cleared.
func (sb *StatusBar) SetCommandLine(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = text
	sb.commandActive = true
}

// ClearCommandLine hides the command line.
func (sb *StatusBar) ClearCommandLine() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = ""
	sb.commandActive = false
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, if any.
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.tempMessageTime.IsZero() || time.Since(sb.tempMessageTime) > sb.config.MessageTimeout {
		return ""
	}
	return sb.tempMessage
}

// leftText builds the file and position part of the status line.
func (sb *StatusBar) leftText() string {
	name := sb.info.FilePath
	if name == "" {
		name = "[No File]"
	} else {
		name = filepath.Base(name)
	}
	modified := ""
	if sb.info.Modified {
		modified = " [Modified]"
	}
	mode := ""
	if sb.editorMode != "" {
		mode = fmt.Sprintf(" -- %s", sb.editorMode)
	}

	if sb.info.Sentences == 0 {
		return fmt.Sprintf("%s%s -- no sentences%s", name, modified, mode)
	}
	return fmt.Sprintf("%s%s -- %d/%d -- Token: %d/%d%s",
		name, modified, sb.info.Sentence+1, sb.info.Sentences, sb.info.Cursor+1, sb.info.Tokens, mode)
}

// rightText builds the selection, undo and score part.
func (sb *StatusBar) rightText() string {
	state := "IDLE"
	if sb.info.Picked {
		state = "PICKED"
	}
	return fmt.Sprintf("%s  undo:%d  acc:%.0f%% ", state, sb.info.UndoDepth, sb.info.Accuracy*100)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	style := sb.config.StyleDefault
	var left, right string
	rightStyle := style
	switch {
	case sb.commandActive:
		left = ":" + sb.commandLine
		style = sb.config.StyleCommand
	case isTempMsgActive:
		left = sb.tempMessage
		style = sb.config.StyleMessage
	default:
		left = sb.leftText()
		right = sb.rightText()
		if sb.info.Picked {
			rightStyle = sb.config.StylePicked
		}
		if sb.info.Modified {
			style = sb.config.StyleModified
		}
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}

	end := drawText(screen, 0, y, width, left, style)
	if right == "" {
		return
	}
	rw := uniseg.StringWidth(right)
	if start := width - rw; start > end {
		drawText(screen, start, y, width, right, rightStyle)
	}
}

// drawText writes text from x, stopping at maxX, and returns the next free column.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}
