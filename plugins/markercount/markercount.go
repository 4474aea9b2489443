// plugins/markercount/markercount.go
package markercount

import (
	"fmt"

	"github.com/bethropolis/mathtag/internal/markup"
	"github.com/bethropolis/mathtag/internal/plugin"
)

// Ensure MarkerCount implements plugin.Plugin
var _ plugin.Plugin = (*MarkerCount)(nil)

// MarkerCount reports how many markers the edited set holds.
type MarkerCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the MarkerCount plugin.
func New() *MarkerCount {
	return &MarkerCount{}
}

// Name returns the unique name of the plugin.
func (p *MarkerCount) Name() string {
	return "MarkerCount"
}

// Initialize registers the :mc command.
func (p *MarkerCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("mc", p.executeMarkerCount); err != nil {
		return fmt.Errorf("failed to register 'mc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *MarkerCount) Shutdown() error {
	return nil
}

// Counts is the marker tally for a set of sentences.
type Counts struct {
	Open, Close int
	Sentences   int // Sentences with at least one marker
	Unbalanced  int // Sentences whose open and close counts differ
}

// Count tallies markers in the given sentences.
func Count(sentences []string) Counts {
	var c Counts
	for _, s := range sentences {
		seq := markup.Tokenize(s)
		open := len(seq.Positions(markup.OpenMarker))
		closing := len(seq.Positions(markup.CloseMarker))
		c.Open += open
		c.Close += closing
		if open+closing > 0 {
			c.Sentences++
		}
		if open != closing {
			c.Unbalanced++
		}
	}
	return c
}

// executeMarkerCount runs for :mc. With "." it counts only the viewed sentence.
func (p *MarkerCount) executeMarkerCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("markercount plugin not initialized with API")
	}

	sentences := p.api.EditedSentences()
	scope := "set"
	if len(args) > 0 && args[0] == "." {
		cur := p.api.CurrentSentence()
		if cur < 0 || cur >= len(sentences) {
			return fmt.Errorf("no sentence in view")
		}
		sentences = sentences[cur : cur+1]
		scope = fmt.Sprintf("sentence %d", cur+1)
	} else if len(args) > 0 {
		return fmt.Errorf("usage: mc [.]")
	}

	c := Count(sentences)
	p.api.SetStatusMessage("Markers (%s): open %d, close %d in %d of %d sentences, %d unbalanced",
		scope, c.Open, c.Close, c.Sentences, len(sentences), c.Unbalanced)
	return nil
}
