package app

import (
	"fmt"

	"github.com/bethropolis/mathtag/internal/config"
	"github.com/bethropolis/mathtag/internal/logger"
	"github.com/bethropolis/mathtag/internal/plugin"

	"github.com/bethropolis/mathtag/plugins/autoexport"
	"github.com/bethropolis/mathtag/plugins/markercount"
)

// registerPlugins creates and registers all known plugins with the manager.
func registerPlugins(pm *plugin.Manager, cfg *config.Config) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	// Adding a new plugin means adding its constructor here.
	pluginList := []plugin.Plugin{
		markercount.New(),
		autoexport.New(autoexport.Options{
			Enabled:  cfg.Export.AutoExport,
			Interval: cfg.Export.AutoInterval.Duration,
		}),
	}

	var finalErr error
	for _, p := range pluginList {
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Keep the first error
			}
		}
	}
	return finalErr
}
