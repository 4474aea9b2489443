// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/markup"
)

// Style names used by the renderer and status bar.
const (
	StyleDefault           = "Default"
	StyleWord              = "Word"
	StyleWhitespace        = "Whitespace"
	StyleOpenMarker        = "Marker.open"
	StyleCloseMarker       = "Marker.close"
	StyleCursor            = "Cursor"
	StylePicked            = "Picked"
	StyleDropSlot          = "DropSlot"
	StyleResultLine        = "ResultLine"
	StyleLabel             = "Label"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarPicked   = "StatusBarPicked"
	StyleStatusBarCommand  = "StatusBarCommand"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks a style up by exact name, then by base name (part before the first
// dot), then falls back to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// TokenStyle returns the style for a token of the given kind.
func (t *Theme) TokenStyle(kind markup.Kind) tcell.Style {
	switch kind {
	case markup.OpenMarker:
		return t.GetStyle(StyleOpenMarker)
	case markup.CloseMarker:
		return t.GetStyle(StyleCloseMarker)
	case markup.Whitespace:
		return t.GetStyle(StyleWhitespace)
	}
	return t.GetStyle(StyleWord)
}

// --- Built-in themes ---

var (
	SlateDark  Theme
	PaperLight Theme
)

func init() {
	// --- Palette for Slate Dark ---
	sdBackground := tcell.NewHexColor(0x2a2f38)
	sdForeground := tcell.NewHexColor(0xc5cdd9)
	sdMuted := tcell.NewHexColor(0x5c6370)
	sdYellow := tcell.NewHexColor(0xe5c07b)
	sdGreen := tcell.NewHexColor(0x98c379)
	sdBlue := tcell.NewHexColor(0x61afef)
	sdMagenta := tcell.NewHexColor(0xc678dd)
	sdOrange := tcell.NewHexColor(0xd19a66)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(sdForeground)
	SlateDark = Theme{
		Name:   "Slate Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleWord:              base,
			StyleWhitespace:        base.Foreground(sdMuted),
			"Marker":               base.Foreground(sdBlue).Bold(true),
			StyleOpenMarker:        base.Foreground(sdGreen).Bold(true),
			StyleCloseMarker:       base.Foreground(sdMagenta).Bold(true),
			StyleCursor:            base.Reverse(true),
			StylePicked:            tcell.StyleDefault.Background(sdYellow).Foreground(tcell.ColorBlack).Bold(true),
			StyleDropSlot:          base.Foreground(sdOrange).Bold(true),
			StyleResultLine:        base.Bold(true),
			StyleLabel:             base.Foreground(sdMuted).Italic(true),
			StyleStatusBar:         tcell.StyleDefault.Background(sdBackground).Foreground(sdForeground),
			StyleStatusBarModified: tcell.StyleDefault.Background(sdBackground).Foreground(sdYellow),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(sdBackground).Foreground(sdForeground).Bold(true),
			StyleStatusBarPicked:   tcell.StyleDefault.Background(sdBackground).Foreground(sdOrange).Bold(true),
			StyleStatusBarCommand:  tcell.StyleDefault.Background(sdBackground).Foreground(sdGreen).Bold(true),
		},
	}

	// --- Palette for Paper Light ---
	plBackground := tcell.NewHexColor(0xe8e4da)
	plForeground := tcell.NewHexColor(0x383a42)
	plMuted := tcell.NewHexColor(0xa0a1a7)
	plGreen := tcell.NewHexColor(0x50a14f)
	plRed := tcell.NewHexColor(0xe45649)
	plBlue := tcell.NewHexColor(0x4078f2)
	plAmber := tcell.NewHexColor(0xc18401)

	light := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(plForeground)
	PaperLight = Theme{
		Name:   "Paper Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:           light,
			StyleWhitespace:        light.Foreground(plMuted),
			"Marker":               light.Foreground(plBlue).Bold(true),
			StyleOpenMarker:        light.Foreground(plGreen).Bold(true),
			StyleCloseMarker:       light.Foreground(plRed).Bold(true),
			StyleCursor:            light.Reverse(true),
			StylePicked:            tcell.StyleDefault.Background(plAmber).Foreground(tcell.ColorWhite).Bold(true),
			StyleDropSlot:          light.Foreground(plAmber).Bold(true),
			StyleLabel:             light.Foreground(plMuted).Italic(true),
			StyleStatusBar:         tcell.StyleDefault.Background(plBackground).Foreground(plForeground),
			StyleStatusBarModified: tcell.StyleDefault.Background(plBackground).Foreground(plRed),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(plBackground).Foreground(plForeground).Bold(true),
			StyleStatusBarPicked:   tcell.StyleDefault.Background(plBackground).Foreground(plAmber).Bold(true),
		},
	}
}

// Builtins returns the themes compiled into the binary.
func Builtins() []*Theme {
	return []*Theme{&SlateDark, &PaperLight}
}
