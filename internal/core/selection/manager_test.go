package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeEditor struct{ n int }

func (f *fakeEditor) TokenCount() int { return f.n }

func TestCursorClampsToTokens(t *testing.T) {
	m := NewManager(&fakeEditor{n: 3})
	m.MoveCursor(-1)
	assert.Equal(t, 0, m.Cursor())
	m.MoveCursor(10)
	assert.Equal(t, 2, m.Cursor())
	assert.Equal(t, Idle, m.State())
}

func TestPickAllowsSlotAfterLastToken(t *testing.T) {
	m := NewManager(&fakeEditor{n: 3})
	m.SetCursor(1)
	assert.True(t, m.Pick())
	assert.False(t, m.Pick())
	assert.Equal(t, TokenSelected, m.State())

	m.MoveCursor(10)
	assert.Equal(t, 3, m.Cursor())

	src, tgt, ok := m.Drop()
	assert.True(t, ok)
	assert.Equal(t, 1, src)
	assert.Equal(t, 3, tgt)
	assert.Equal(t, Idle, m.State())
}

func TestCancelRestoresCursor(t *testing.T) {
	m := NewManager(&fakeEditor{n: 5})
	m.SetCursor(2)
	m.Pick()
	m.MoveCursor(2)
	m.Cancel()
	assert.Equal(t, 2, m.Cursor())
	_, picked := m.Source()
	assert.False(t, picked)

	_, _, ok := m.Drop()
	assert.False(t, ok)
}

func TestEmptySentence(t *testing.T) {
	m := NewManager(&fakeEditor{n: 0})
	assert.False(t, m.Pick())
	m.Reset(4)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, "IDLE", m.State().String())
}
