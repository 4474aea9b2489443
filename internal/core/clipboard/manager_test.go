package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyInternalOnly(t *testing.T) {
	m := NewManager(false)
	require.NoError(t, m.Copy("a <MATH> b"))
	assert.Equal(t, "a <MATH> b", m.Contents())
	assert.False(t, m.UsesSystem())
}

func TestCopyMirrorsToSystem(t *testing.T) {
	var got string
	m := &Manager{useSystem: true, writeAll: func(s string) error {
		got = s
		return nil
	}}

	require.NoError(t, m.Copy("x"))
	assert.Equal(t, "x", got)
}

func TestCopyKeepsRegisterOnSystemFailure(t *testing.T) {
	boom := errors.New("no display")
	m := &Manager{useSystem: true, writeAll: func(string) error { return boom }}

	err := m.Copy("kept")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "kept", m.Contents())
}
