package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/mathtag/internal/markup"
)

const customTheme = `
name = "Chalk"
is_dark = true

[styles.Default]
fg = "#eeeeee"
bg = "reset"

[styles.Marker]
fg = "yellow"
bold = true

[styles.Word]
italic = true

[styles.Broken]
fg = "#12"
`

func TestGetStyleFallbacks(t *testing.T) {
	th := &SlateDark
	assert.Equal(t, th.Styles[StyleOpenMarker], th.GetStyle(StyleOpenMarker))
	assert.Equal(t, th.Styles["Marker"], th.GetStyle("Marker.unknown"))
	assert.Equal(t, th.Styles[StyleDefault], th.GetStyle("Nope"))

	bare := &Theme{Name: "bare", Styles: map[string]tcell.Style{}}
	assert.Equal(t, tcell.StyleDefault, bare.GetStyle("Nope"))
}

func TestTokenStyle(t *testing.T) {
	th := &PaperLight
	assert.Equal(t, th.GetStyle(StyleOpenMarker), th.TokenStyle(markup.OpenMarker))
	assert.Equal(t, th.GetStyle(StyleCloseMarker), th.TokenStyle(markup.CloseMarker))
	assert.Equal(t, th.GetStyle(StyleWhitespace), th.TokenStyle(markup.Whitespace))
	// Paper Light has no Word style
	assert.Equal(t, th.GetStyle(StyleDefault), th.TokenStyle(markup.Word))
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chalk.toml")
	require.NoError(t, os.WriteFile(path, []byte(customTheme), 0o644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Chalk", th.Name)
	assert.True(t, th.IsDark)

	fg, bg, _ := th.GetStyle(StyleDefault).Decompose()
	assert.Equal(t, tcell.NewHexColor(0xeeeeee), fg)
	assert.Equal(t, tcell.ColorReset, bg)

	fg, _, attrs := th.GetStyle("Marker").Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	// Word inherits Default's foreground
	fg, _, attrs = th.GetStyle(StyleWord).Decompose()
	assert.Equal(t, tcell.NewHexColor(0xeeeeee), fg)
	assert.NotZero(t, attrs&tcell.AttrItalic)

	_, ok := th.Styles["Broken"]
	assert.False(t, ok, "invalid style skipped")

	// the file's Marker group replaces the built-in per-kind marker styles
	assert.Equal(t, th.GetStyle("Marker"), th.TokenStyle(markup.OpenMarker))
	// styles the file leaves alone come from Slate Dark
	assert.Equal(t, SlateDark.Styles[StylePicked], th.GetStyle(StylePicked))
}

func TestLoadThemeExtends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sepia.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
extends = "paper light"

[styles."Marker.open"]
underline = true
`), 0o644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sepia", th.Name)
	assert.False(t, th.IsDark)
	assert.Equal(t, PaperLight.Styles[StyleCloseMarker], th.GetStyle(StyleCloseMarker))

	fg, _, attrs := th.GetStyle(StyleOpenMarker).Decompose()
	wantFg, _, _ := PaperLight.Styles[StyleOpenMarker].Decompose()
	assert.Equal(t, wantFg, fg)
	assert.NotZero(t, attrs&tcell.AttrUnderline)
	assert.NotZero(t, attrs&tcell.AttrBold)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`extends = "Neon"`), 0o644))
	_, err = LoadThemeFromFile(bad)
	assert.ErrorContains(t, err, "unknown base theme")
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString(" #FF0000 ")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0xff0000), c)

	c, err = parseColorString("default")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorDefault, c)

	_, err = parseColorString("not-a-color")
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chalk.toml"), []byte(customTheme), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("name = "), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.LoadError())
	assert.Equal(t, DefaultThemeName, m.Current().Name)
	assert.Equal(t, []string{"Chalk", "Paper Light", "Slate Dark"}, m.ListThemes())

	require.NoError(t, m.SetTheme("paper light"))
	assert.Equal(t, "Paper Light", m.Current().Name)
	assert.Error(t, m.SetTheme("missing"))
	assert.Equal(t, "Paper Light", m.Current().Name)

	_, ok := m.GetTheme("CHALK")
	assert.True(t, ok)
}

func TestManagerMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, m.LoadError())
	assert.Len(t, m.ListThemes(), 2)
}
