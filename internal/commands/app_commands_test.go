package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/mathtag/internal/plugin/plugintest"
)

type fakeHost struct {
	undos    int
	gotoArgs []int
	yanks    int
	quits    []bool
	quitErr  error
}

func (h *fakeHost) Undo() bool {
	h.undos++
	return h.undos == 1
}

func (h *fakeHost) GotoSentence(i int) error {
	h.gotoArgs = append(h.gotoArgs, i)
	if i < 0 {
		return errors.New("out of range")
	}
	return nil
}

func (h *fakeHost) Yank() error {
	h.yanks++
	return nil
}

func (h *fakeHost) Quit(force bool) error {
	h.quits = append(h.quits, force)
	if !force {
		return h.quitErr
	}
	return nil
}

func setup(t *testing.T) (*plugintest.API, *fakeHost) {
	t.Helper()
	api := plugintest.New("The area <MATH>A=pi r^2</MATH>, approx.", "Plain.")
	host := &fakeHost{}
	require.NoError(t, RegisterAppCommands(api, host))
	return api, host
}

func TestRegisterTwiceFails(t *testing.T) {
	api, host := setup(t)
	assert.Error(t, RegisterAppCommands(api, host))
}

func TestThemeCommands(t *testing.T) {
	api, _ := setup(t)

	require.NoError(t, api.Run("theme"))
	assert.Equal(t, "Current theme: Slate Dark", api.LastMessage())

	require.NoError(t, api.Run("theme", "Paper", "Light"))
	assert.Equal(t, "Theme set to: Paper Light", api.LastMessage())
	assert.Equal(t, "Paper Light", api.GetTheme().Name)

	err := api.Run("theme", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available: Slate Dark, Paper Light")

	require.NoError(t, api.Run("themes"))
	assert.Equal(t, "Available themes: Slate Dark, Paper Light", api.LastMessage())
}

func TestWriteCommands(t *testing.T) {
	api, host := setup(t)

	require.NoError(t, api.Run("w"))
	require.NoError(t, api.Run("w", "out.txt"))
	assert.Error(t, api.Run("w", "a", "b"))
	assert.Equal(t, []string{"", "out.txt"}, api.Exports)

	require.NoError(t, api.Run("wq", "final.txt"))
	assert.Equal(t, "final.txt", api.Exports[2])
	assert.Equal(t, []bool{true}, host.quits)

	api.ExportErr = errors.New("denied")
	assert.Error(t, api.Run("wq"))
	assert.Len(t, host.quits, 1)
}

func TestQuitCommands(t *testing.T) {
	api, host := setup(t)
	host.quitErr = errors.New("unexported changes")

	assert.Error(t, api.Run("q"))
	require.NoError(t, api.Run("q!"))
	assert.Equal(t, []bool{false, true}, host.quits)
}

func TestSessionCommands(t *testing.T) {
	api, host := setup(t)

	require.NoError(t, api.Run("undo"))
	require.NoError(t, api.Run("undo"))
	assert.Equal(t, "Nothing to undo", api.LastMessage())

	require.NoError(t, api.Run("yank"))
	assert.Equal(t, 1, host.yanks)

	require.NoError(t, api.Run("goto", "2"))
	assert.Error(t, api.Run("goto", "x"))
	assert.Error(t, api.Run("goto"))
	assert.Error(t, api.Run("goto", "0"))
	assert.Equal(t, []int{1, -1}, host.gotoArgs)

	require.NoError(t, api.Run("score"))
	assert.Equal(t, "Markers: 2, moved: 0, removed: 0, accuracy 100.0%", api.LastMessage())
}
