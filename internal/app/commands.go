package app

import (
	"github.com/bethropolis/mathtag/internal/commands"
	"github.com/bethropolis/mathtag/internal/modehandler"
)

var (
	_ modehandler.Host = (*App)(nil)
	_ commands.Host    = (*App)(nil)
)

// registerAppCommands registers built-in commands like :w and :theme.
func registerAppCommands(app *App) error {
	return commands.RegisterAppCommands(app.editorAPI, app)
}
