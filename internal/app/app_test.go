package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/mathtag/internal/config"
	"github.com/bethropolis/mathtag/internal/modehandler"
)

const document = "The area <MATH>A=pi r^2</MATH>, approx. No math here."

type testApp struct {
	*App
	screen     tcell.SimulationScreen
	exportPath string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte(document), 0o644))

	cfg := config.NewDefaultConfig()
	cfg.Export.Path = filepath.Join(dir, "out.txt")
	cfg.Editor.SystemClipboard = false

	s := tcell.NewSimulationScreen("UTF-8")
	a, err := New(cfg, in, s)
	require.NoError(t, err)
	s.SetSize(100, 20)
	t.Cleanup(a.tuiManager.Close)
	return &testApp{App: a, screen: s, exportPath: cfg.Export.Path}
}

func (ta *testApp) key(k tcell.Key, r rune, mod tcell.ModMask) {
	ta.handleEvent(tcell.NewEventKey(k, r, mod))
}

func (ta *testApp) row(y int) string {
	cells, w, _ := ta.screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteString(string(cells[y*w+x].Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestNewFailsOnMissingFile(t *testing.T) {
	cfg := config.NewDefaultConfig()
	_, err := New(cfg, filepath.Join(t.TempDir(), "missing.txt"), tcell.NewSimulationScreen("UTF-8"))
	assert.Error(t, err)
}

func TestDrawShowsSession(t *testing.T) {
	ta := newTestApp(t)
	ta.drawEditor()

	assert.Contains(t, ta.row(0), "Sentence 1 of 2")
	assert.Contains(t, ta.row(1), "The area <MATH>A=pi r^2</MATH>, approx.")
	assert.Contains(t, ta.row(2), "Original:")
	assert.NotEmpty(t, ta.layout.Boxes)
	assert.Contains(t, ta.row(19), "NORMAL")
}

func TestKeyboardEditAndExport(t *testing.T) {
	ta := newTestApp(t)

	ta.editor.SetCursor(4)
	ta.key(tcell.KeyRune, ' ', tcell.ModNone)
	for i := 0; i < 3; i++ {
		ta.key(tcell.KeyRight, 0, tcell.ModNone)
	}
	ta.key(tcell.KeyRune, ' ', tcell.ModNone)
	require.Equal(t, "The area A=pi <MATH> r^2 </MATH>, approx.", ta.editor.CurrentText())
	assert.InDelta(t, 0.5, ta.accuracy, 1e-9)
	assert.True(t, ta.editor.HasUnexportedChanges())

	ta.key(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	data, err := os.ReadFile(ta.exportPath)
	require.NoError(t, err)
	assert.Equal(t, "The area A=pi <MATH> r^2 </MATH>, approx.\n", string(data))
	assert.False(t, ta.editor.HasUnexportedChanges())
	assert.Equal(t, "Exported 1 sentence(s) to "+ta.exportPath, ta.statusBar.Message())
}

func TestMouseDragThroughApp(t *testing.T) {
	ta := newTestApp(t)
	ta.drawEditor()

	open := ta.layout.Boxes[4]
	slot := ta.layout.Slots[7]
	ta.handleEvent(tcell.NewEventMouse(open.X, open.Y, tcell.Button1, tcell.ModNone))
	ta.handleEvent(tcell.NewEventMouse(slot.X, slot.Y, tcell.Button1, tcell.ModNone))
	ta.handleEvent(tcell.NewEventMouse(slot.X, slot.Y, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, "The area A=pi <MATH> r^2 </MATH>, approx.", ta.editor.CurrentText())
}

func TestCommandsThroughApp(t *testing.T) {
	ta := newTestApp(t)
	mh := ta.GetModeHandler()

	other := filepath.Join(filepath.Dir(ta.exportPath), "other.txt")
	mh.ExecuteCommand("w " + other)
	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, "The area <MATH>A=pi r^2</MATH>, approx.\n", string(data))

	mh.ExecuteCommand("theme paper light")
	assert.Equal(t, "Paper Light", ta.themeManager.Current().Name)

	mh.ExecuteCommand("goto 2")
	assert.Equal(t, 1, ta.editor.Current())

	mh.ExecuteCommand("mc")
	assert.Equal(t, "Markers (set): open 1, close 1 in 1 of 2 sentences, 0 unbalanced", ta.statusBar.Message())

	assert.True(t, mh.HasCommand("autoexport"))
}

func TestYankUsesRegister(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.Yank())
	assert.Equal(t, "The area <MATH>A=pi r^2</MATH>, approx.", ta.clipboard.Contents())
}

func TestQuitCommandRefusesUnexported(t *testing.T) {
	ta := newTestApp(t)
	_, err := ta.editor.ApplyDelete(0, 4)
	require.NoError(t, err)

	assert.ErrorIs(t, ta.Quit(false), modehandler.ErrUnexportedChanges)
	require.NoError(t, ta.Quit(true))
	select {
	case <-ta.quit:
	default:
		t.Fatal("quit channel not closed")
	}
}

func TestRunReturnsOnQuit(t *testing.T) {
	ta := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- ta.Run() }()

	require.Eventually(t, func() bool {
		return ta.screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) == nil
	}, time.Second, 10*time.Millisecond)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}
