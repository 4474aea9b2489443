package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("mathtag", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	_, err := f.Parse(args)
	require.NoError(t, err)
	return f
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "none.toml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, 0, cfg.Editor.HistoryLimit)
	assert.Equal(t, DefaultExportFileName, cfg.Export.Path)
	assert.Equal(t, DefaultAutoExportInterval, cfg.Export.AutoInterval.Duration)
	assert.False(t, cfg.Document.MarkedOnly)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "debug"
enabled_tags = ["core"]

[editor]
history_limit = 50
theme = "Dark"

[document]
marked_only = true

[export]
auto_export = true
auto_export_interval = "2m"

[bogus]
key = 1
`)
	cfg, err := load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"core"}, cfg.Logger.EnabledTags)
	assert.Equal(t, 50, cfg.Editor.HistoryLimit)
	assert.Equal(t, "Dark", cfg.Editor.Theme)
	assert.True(t, cfg.Document.MarkedOnly)
	assert.True(t, cfg.Export.AutoExport)
	assert.Equal(t, 2*time.Minute, cfg.Export.AutoInterval.Duration)
	assert.Equal(t, DefaultExportFileName, cfg.Export.Path, "unset key keeps default")
	assert.Equal(t, StatusBarHeight, cfg.Editor.StatusBarHeight)
	assert.Contains(t, UnknownKeys(), "bogus.key")
}

func TestLoadFileParseError(t *testing.T) {
	path := writeConfig(t, "[editor\nhistory_limit = ")
	cfg, err := load(path, nil)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestValidateResetsInvalid(t *testing.T) {
	path := writeConfig(t, `
[editor]
history_limit = -4
status_bar_height = 0

[export]
path = ""
auto_export_interval = "10ms"
`)
	cfg, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Editor.HistoryLimit)
	assert.Equal(t, StatusBarHeight, cfg.Editor.StatusBarHeight)
	assert.Equal(t, DefaultExportFileName, cfg.Export.Path)
	assert.Equal(t, DefaultAutoExportInterval, cfg.Export.AutoInterval.Duration)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[editor]\nhistory_limit = 10\n")
	flags := newTestFlags(t,
		"-history", "3",
		"-marked-only",
		"-export", "out.txt",
		"-loglevel", "warn",
		"-log-tags", "core, history ,",
		"-auto-export-interval", "5s",
		"input.txt",
	)

	cfg, err := load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Editor.HistoryLimit)
	assert.True(t, cfg.Document.MarkedOnly)
	assert.Equal(t, "out.txt", cfg.Export.Path)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"core", "history"}, cfg.Logger.EnabledTags)
	assert.Equal(t, 5*time.Second, cfg.Export.AutoInterval.Duration)
	assert.Equal(t, []string{"input.txt"}, flags.fs.Args())
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "[editor]\nhistory_limit = 10\nsystem_clipboard = false\n")
	cfg, err := load(path, newTestFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Editor.HistoryLimit)
	assert.False(t, cfg.Editor.SystemClipboard)
}
