// internal/app/editor_api.go
package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/fidelity"
	"github.com/bethropolis/mathtag/internal/plugin"
	"github.com/bethropolis/mathtag/internal/theme"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Session Access ---

func (api *appEditorAPI) SentenceCount() int {
	return api.app.editor.SentenceCount()
}

func (api *appEditorAPI) OriginalSentences() []string {
	return api.app.editor.Original()
}

func (api *appEditorAPI) EditedSentences() []string {
	return api.app.editor.Edited()
}

func (api *appEditorAPI) CurrentSentence() int {
	return api.app.editor.Current()
}

func (api *appEditorAPI) SourcePath() string {
	return api.app.editor.Source()
}

func (api *appEditorAPI) IsModified() bool {
	return api.app.editor.IsModified()
}

func (api *appEditorAPI) HasUnexportedChanges() bool {
	return api.app.editor.HasUnexportedChanges()
}

// --- Scoring & Export ---

func (api *appEditorAPI) Score() fidelity.Report {
	return api.app.editor.Score()
}

func (api *appEditorAPI) ExportText() string {
	return api.app.editor.ExportText()
}

func (api *appEditorAPI) Export(path string) error {
	return api.app.Export(path)
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme activates a theme and tells subscribers so they can restyle.
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := api.app.themeManager.Current()
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	return nil
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}
