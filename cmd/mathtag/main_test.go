package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	assert.Equal(t, "mathtag dev\n", stdout.String())
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: mathtag [flags] <file>")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"-report", "only-one.txt"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-no-such-flag"}, &stdout, &stderr))
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	original := filepath.Join(dir, "original.txt")
	edited := filepath.Join(dir, "edited.txt")
	require.NoError(t, os.WriteFile(original, []byte("The area <MATH>A=pi r^2</MATH>, approx. Plain."), 0o644))
	require.NoError(t, os.WriteFile(edited, []byte("The area A=pi <MATH> r^2 </MATH>, approx. Plain."), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-logfile", "-", "-report", edited, original}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Markers   2")
	assert.Contains(t, out, "Accuracy  50.0%")
	assert.Contains(t, out, "#1 moved 1/2")
}
