// internal/theme/loader.go
package theme

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/bethropolis/mathtag/internal/logger"
)

// styleDef is one [styles.<Name>] table. Pointers tell unset attributes from false ones.
type styleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// themeFile is the layout of a theme file.
//
//	name = "Chalk"
//	extends = "Slate Dark"   # optional, defaults by is_dark
//	is_dark = true
//	[styles."Marker.open"]
//	fg = "#98c379"
type themeFile struct {
	Name    string              `toml:"name"`
	Extends string              `toml:"extends"`
	IsDark  *bool               `toml:"is_dark"`
	Styles  map[string]styleDef `toml:"styles"`
}

// knownStyles lists every style name the editor draws with, plus the "Marker" group.
var knownStyles = map[string]bool{
	StyleDefault: true, StyleWord: true, StyleWhitespace: true, "Marker": true,
	StyleOpenMarker: true, StyleCloseMarker: true, StyleCursor: true, StylePicked: true,
	StyleDropSlot: true, StyleResultLine: true, StyleLabel: true, StyleStatusBar: true,
	StyleStatusBarModified: true, StyleStatusBarMessage: true, StyleStatusBarPicked: true,
	StyleStatusBarCommand: true,
}

// LoadThemeFromFile reads a theme file and layers it over a built-in theme. Styles the file
// defines inherit unset attributes from the file's Default, or from the built-in style of
// the same name when the file has no Default. Built-in styles of a group the file overrides
// ("Marker" covers "Marker.open") are not carried over.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var file themeFile
	metadata, err := toml.DecodeFile(filePath, &file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading theme %s", filePath)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme file '%s': unrecognized keys %v", filePath, undecoded)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' has no name, using '%s'", filePath, file.Name)
	}

	base, err := baseTheme(file)
	if err != nil {
		return nil, errors.WithMessagef(err, "theme %s", filePath)
	}

	th := &Theme{
		Name:   file.Name,
		IsDark: base.IsDark,
		Styles: make(map[string]tcell.Style, len(base.Styles)+len(file.Styles)),
	}
	if file.IsDark != nil {
		th.IsDark = *file.IsDark
	}

	_, fileDefault := file.Styles[StyleDefault]
	parent := func(name string) tcell.Style {
		if fileDefault {
			return th.Styles[StyleDefault]
		}
		return base.GetStyle(name)
	}

	if def, ok := file.Styles[StyleDefault]; ok {
		style, err := applyStyleDef(def, base.GetStyle(StyleDefault))
		if err != nil {
			logger.Warnf("Theme '%s': Default style: %v, keeping %s's", th.Name, err, base.Name)
			style = base.GetStyle(StyleDefault)
		}
		th.Styles[StyleDefault] = style
	}

	for name, def := range file.Styles {
		if name == StyleDefault {
			continue
		}
		if !knownStyles[name] {
			logger.Warnf("Theme '%s': style '%s' is not used by the editor", th.Name, name)
		}
		style, err := applyStyleDef(def, parent(name))
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", th.Name, name, err)
			continue
		}
		th.Styles[name] = style
	}

	for name, style := range base.Styles {
		if _, ok := th.Styles[name]; ok {
			continue
		}
		if group, _, dotted := strings.Cut(name, "."); dotted {
			if _, overridden := th.Styles[group]; overridden {
				continue
			}
		}
		th.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' over '%s' from '%s'", th.Name, base.Name, filePath)
	return th, nil
}

func baseTheme(file themeFile) (*Theme, error) {
	if file.Extends != "" {
		for _, b := range Builtins() {
			if strings.EqualFold(b.Name, file.Extends) {
				return b, nil
			}
		}
		return nil, errors.Errorf("unknown base theme %q", file.Extends)
	}
	if file.IsDark != nil && !*file.IsDark {
		return &PaperLight, nil
	}
	return &SlateDark, nil
}

func applyStyleDef(def styleDef, style tcell.Style) (tcell.Style, error) {
	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, errors.WithMessage(err, "fg")
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, errors.WithMessage(err, "bg")
		}
		style = style.Background(color)
	}

	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts "#RRGGBB", "reset", "default" or a W3C color name.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return tcell.ColorDefault, errors.Errorf("color %q: want #RRGGBB", s)
		}
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return tcell.ColorDefault, errors.Wrapf(err, "color %q", s)
		}
		return tcell.NewHexColor(int32(val)), nil
	}

	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, errors.Errorf("unknown color %q", s)
}
