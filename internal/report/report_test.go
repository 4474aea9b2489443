package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/mathtag/internal/fidelity"
)

func TestWriteSummary(t *testing.T) {
	rep := fidelity.Score(
		[]string{"The area <MATH>A=pi r^2</MATH>, approx."},
		[]string{"The area A=pi <MATH> r^2 </MATH>, approx."},
	)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, false))
	out := buf.String()

	assert.Contains(t, out, "Fidelity report")
	assert.Contains(t, out, "Markers   2")
	assert.Contains(t, out, "Moved     1")
	assert.Contains(t, out, "Accuracy  50.0%")
	assert.NotContains(t, out, "#1")
	// A bytes.Buffer is not a terminal
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteVerboseListsMovedSentences(t *testing.T) {
	original := []string{"Let <MATH>x</MATH> be real.", "Plain text."}
	edited := []string{"Let x <MATH></MATH> be real.", "Plain text."}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fidelity.Score(original, edited), true))
	out := buf.String()

	assert.Contains(t, out, "#1 moved")
	assert.Contains(t, out, "original: Let <MATH>x</MATH> be real.")
	assert.NotContains(t, out, "#2")
	assert.Equal(t, 1, strings.Count(out, "edited:"))
}

func TestUnchangedIsFullAccuracy(t *testing.T) {
	same := []string{"a <MATH>b</MATH>."}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fidelity.Score(same, same), true))
	assert.Contains(t, buf.String(), "Accuracy  100.0%")
	assert.NotContains(t, buf.String(), "#1")
}
