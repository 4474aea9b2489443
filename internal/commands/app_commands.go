// Package commands registers the built-in ':' commands.
package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/plugin"
)

// Host is what the built-in commands need beyond the plugin API.
type Host interface {
	Undo() bool
	GotoSentence(index int) error // 0-based
	Yank() error
	// Quit ends the session. Without force it refuses while there are unexported changes.
	Quit(force bool) error
}

// RegisterAppCommands registers every built-in command. Registration stops at the
// first failure.
func RegisterAppCommands(api plugin.EditorAPI, host Host) error {
	if err := RegisterThemeCommands(api); err != nil {
		return err
	}
	return RegisterSessionCommands(api, host)
}

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(api plugin.EditorAPI) error {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Allow theme names with spaces
		if err := api.SetTheme(themeName); err != nil {
			themeList := strings.Join(api.ListThemes(), ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		api.SetStatusMessage("Theme set to: %s", themeName)
		return nil
	}

	themeListCmdFunc := func(args []string) error {
		api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
		return nil
	}

	return register(api, map[string]plugin.CommandFunc{
		"theme":  themeCmdFunc,
		"themes": themeListCmdFunc,
	})
}

// RegisterSessionCommands registers the export, navigation and quit commands.
func RegisterSessionCommands(api plugin.EditorAPI, host Host) error {
	write := func(args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("usage: w [path]")
		}
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return api.Export(path)
	}

	quit := func(force bool) plugin.CommandFunc {
		return func(args []string) error {
			return host.Quit(force)
		}
	}

	return register(api, map[string]plugin.CommandFunc{
		"w": write,
		"wq": func(args []string) error {
			if err := write(args); err != nil {
				return err
			}
			return host.Quit(true)
		},
		"q":  quit(false),
		"q!": quit(true),
		"yank": func(args []string) error {
			return host.Yank()
		},
		"undo": func(args []string) error {
			if !host.Undo() {
				api.SetStatusMessage("Nothing to undo")
			}
			return nil
		},
		"score": func(args []string) error {
			r := api.Score()
			api.SetStatusMessage("Markers: %d, moved: %d, removed: %d, accuracy %.1f%%",
				r.TotalMarkers, r.MovedMarkers, r.RemovedMarkers, r.Accuracy*100)
			return nil
		},
		"goto": func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: goto N")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid sentence number %q", args[0])
			}
			return host.GotoSentence(n - 1)
		},
	})
}

// register adds commands in name order so failures are deterministic.
func register(api plugin.EditorAPI, cmds map[string]plugin.CommandFunc) error {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := api.RegisterCommand(name, cmds[name]); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
			return err
		}
	}
	return nil
}
