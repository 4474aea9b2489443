package autoexport

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/mathtag/internal/event"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/plugin"
)

// Ensure AutoExport implements plugin.Plugin
var _ plugin.Plugin = (*AutoExport)(nil)

const defaultInterval = 30 * time.Second

// Options configures the plugin.
type Options struct {
	Enabled  bool
	Interval time.Duration // Non-positive means the default
}

// AutoExport periodically writes the export file while the set has unexported changes.
type AutoExport struct {
	api plugin.EditorAPI

	mutex    sync.Mutex // Protects the fields below
	enabled  bool
	interval time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
	exports  int // Successful automatic exports this session
}

// New creates a new instance of the AutoExport plugin.
func New(opts Options) *AutoExport {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &AutoExport{
		enabled:  opts.Enabled,
		interval: interval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoExport) Name() string {
	return "autoexport"
}

// Initialize registers :autoexport and starts the export loop if enabled.
func (p *AutoExport) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("autoexport", p.executeCommand); err != nil {
		return fmt.Errorf("failed to register 'autoexport' command: %w", err)
	}

	// The export count is per session
	api.SubscribeEvent(event.TypeSentencesLoaded, func(event.Event) bool {
		p.mutex.Lock()
		p.exports = 0
		p.mutex.Unlock()
		return false
	})

	p.mutex.Lock()
	enabled, interval := p.enabled, p.interval
	if enabled {
		p.startLocked()
	}
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", p.Name(), enabled, interval)
	return nil
}

// Shutdown stops the export loop and waits for it.
func (p *AutoExport) Shutdown() error {
	p.mutex.Lock()
	p.stopLocked()
	p.mutex.Unlock()
	p.wg.Wait()
	return nil
}

// Enabled reports whether the export loop is running.
func (p *AutoExport) Enabled() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.enabled
}

// Exports returns how many automatic exports succeeded.
func (p *AutoExport) Exports() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.exports
}

func (p *AutoExport) startLocked() {
	if p.stopChan != nil {
		return
	}
	p.enabled = true
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.exportLoop(p.interval, p.stopChan)
	logger.Debugf("%s: Export goroutine started.", p.Name())
}

func (p *AutoExport) stopLocked() {
	p.enabled = false
	if p.stopChan == nil {
		return
	}
	close(p.stopChan)
	p.stopChan = nil
}

// exportLoop is the main loop for the auto-export functionality.
func (p *AutoExport) exportLoop(interval time.Duration, stop <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.exportIfChanged()
		case <-stop:
			logger.Debugf("%s: Received stop signal, exiting export loop.", p.Name())
			return
		}
	}
}

// exportIfChanged exports when the set changed since the last export.
func (p *AutoExport) exportIfChanged() {
	if !p.api.HasUnexportedChanges() {
		logger.DebugTagf("autoexport", "%s: No unexported changes, skipping.", p.Name())
		return
	}
	if err := p.api.Export(""); err != nil {
		logger.Errorf("%s: Auto-export failed: %v", p.Name(), err)
		return
	}
	p.mutex.Lock()
	p.exports++
	p.mutex.Unlock()
	logger.Debugf("%s: Auto-export successful", p.Name())
}

// executeCommand handles ":autoexport [on|off|now]".
func (p *AutoExport) executeCommand(args []string) error {
	if len(args) == 0 {
		p.mutex.Lock()
		enabled, interval := p.enabled, p.interval
		p.mutex.Unlock()
		state := "off"
		if enabled {
			state = "on"
		}
		p.api.SetStatusMessage("Auto-export is %s (every %v)", state, interval)
		return nil
	}

	switch args[0] {
	case "on":
		p.mutex.Lock()
		p.startLocked()
		p.mutex.Unlock()
		p.api.SetStatusMessage("Auto-export on")
	case "off":
		p.mutex.Lock()
		p.stopLocked()
		p.mutex.Unlock()
		p.api.SetStatusMessage("Auto-export off")
	case "now":
		p.exportIfChanged()
	default:
		return fmt.Errorf("usage: autoexport [on|off|now]")
	}
	return nil
}
