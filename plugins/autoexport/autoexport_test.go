package autoexport

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/mathtag/internal/plugin/plugintest"
)

func TestExportsOnlyWhenDirty(t *testing.T) {
	api := plugintest.New("a <MATH>x</MATH>.")
	p := New(Options{Enabled: true, Interval: 10 * time.Millisecond})
	require.NoError(t, p.Initialize(api))
	t.Cleanup(func() { _ = p.Shutdown() })

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, api.ExportCalls())

	api.SetDirty(true)
	assert.Eventually(t, func() bool { return p.Exports() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, api.HasUnexportedChanges())
}

func TestDisabledByDefault(t *testing.T) {
	api := plugintest.New("a.")
	p := New(Options{})
	require.NoError(t, p.Initialize(api))
	assert.False(t, p.Enabled())
	require.NoError(t, p.Shutdown())

	require.NoError(t, api.Run("autoexport"))
	assert.Equal(t, "Auto-export is off (every 30s)", api.LastMessage())
}

func TestCommandToggles(t *testing.T) {
	api := plugintest.New("a.")
	p := New(Options{Interval: time.Hour})
	require.NoError(t, p.Initialize(api))

	require.NoError(t, api.Run("autoexport", "on"))
	assert.True(t, p.Enabled())
	require.NoError(t, api.Run("autoexport", "on"))
	require.NoError(t, api.Run("autoexport", "off"))
	assert.False(t, p.Enabled())
	assert.Error(t, api.Run("autoexport", "sideways"))

	require.NoError(t, p.Shutdown())
}

func TestExportNowFailure(t *testing.T) {
	api := plugintest.New("a <MATH>.")
	api.ExportErr = errors.New("read-only")
	api.SetDirty(true)
	p := New(Options{})
	require.NoError(t, p.Initialize(api))

	require.NoError(t, api.Run("autoexport", "now"))
	assert.Equal(t, 1, api.ExportCalls())
	assert.Equal(t, 0, p.Exports())
	assert.True(t, api.HasUnexportedChanges())
}
