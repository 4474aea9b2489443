// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/mathtag/internal/buffer"
	"github.com/bethropolis/mathtag/internal/config"
	"github.com/bethropolis/mathtag/internal/core"
	"github.com/bethropolis/mathtag/internal/core/clipboard"
	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/input"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/modehandler"
	"github.com/bethropolis/mathtag/internal/plugin"
	"github.com/bethropolis/mathtag/internal/statusbar"
	"github.com/bethropolis/mathtag/internal/theme"
	"github.com/bethropolis/mathtag/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	buffer        *buffer.SentenceBuffer
	clipboard     *clipboard.Manager
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	editorAPI     plugin.EditorAPI

	layout   tui.Layout // Token strip from the last draw, for mouse hit-testing
	accuracy float64    // Cached fidelity, refreshed on edits
	exportMu sync.Mutex // Serializes exports from the UI and plugin goroutines

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	events        chan tcell.Event
}

// NewApp loads filePath ("-" for stdin) and creates the application on the terminal.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	return New(cfg, filePath, nil)
}

// New creates the application. A nil screen means the real terminal.
func New(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	// --- Load the document before touching the terminal ---
	buf := buffer.NewSentenceBuffer(cfg.Document.MarkedOnly)
	if err := buf.Load(filePath); err != nil {
		return nil, err
	}
	buf.SetExportPath(cfg.Export.Path)

	// --- Themes ---
	themeManager := theme.NewManager(config.ThemesDir())
	if err := themeManager.LoadError(); err != nil {
		logger.Warnf("App: Some themes failed to load: %v", err)
	}
	if cfg.Editor.Theme != "" {
		if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v, using %s", err, themeManager.Current().Name)
		}
	}
	defStyle := themeManager.Current().GetStyle(theme.StyleDefault)

	// --- Terminal ---
	var tuiManager *tui.TUI
	var err error
	if screen == nil {
		tuiManager, err = tui.New(defStyle)
	} else {
		tuiManager, err = tui.NewWithScreen(screen, defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	// --- Create Core Components ---
	eventManager := event.NewManager()
	editor := core.NewEditor(cfg.Editor.HistoryLimit)
	editor.SetEventManager(eventManager)
	statusBar := statusbar.New(statusBarConfig(themeManager.Current()))
	quitChan := make(chan struct{})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		buffer:        buf,
		clipboard:     clipboard.NewManager(cfg.Editor.SystemClipboard),
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		accuracy:      1,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		events:        make(chan tcell.Event),
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Host:           a,
		QuitSignal:     quitChan,
	})
	statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())

	a.editorAPI = newEditorAPI(a)
	a.subscribeEvents()

	if err := registerAppCommands(a); err != nil {
		tuiManager.Close()
		return nil, err
	}
	if err := registerPlugins(a.pluginManager, cfg); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Warnf("App: %v", err)
	}

	// Loading last lets plugins see SentencesLoaded
	editor.Load(buf.Sentences(), buf.FilePath())
	return a, nil
}

// Run starts the application's main event and drawing loops. It returns after quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Space pick/drop | Shift+Arrows nudge | x delete | u undo | Ctrl+S export | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.HasUnexportedChanges() {
				logger.Warnf("App: Exited with unexported changes.")
			}
			logger.Infof("App: Exiting application.")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.drawEditor()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop forwards terminal events to Run so all UI state is touched by one goroutine.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent returns true when the screen needs redrawing.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(eventData)
	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(eventData, a.layout)
	}
	return false
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetEditor returns the editing session.
func (a *App) GetEditor() *core.Editor {
	return a.editor
}
