package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeSentenceEdited, func(e Event) bool {
		calls = append(calls, "first")
		data, ok := e.Data.(SentenceEditedData)
		assert.True(t, ok)
		assert.Equal(t, 3, data.Sentence)
		return false
	})
	m.Subscribe(TypeSentenceEdited, func(e Event) bool {
		calls = append(calls, "second")
		return false
	})
	m.Subscribe(TypeExported, func(e Event) bool {
		calls = append(calls, "export")
		return false
	})

	m.Dispatch(TypeSentenceEdited, SentenceEditedData{Sentence: 3, Action: "move"})
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, m.HandlerCount(TypeSentenceEdited))
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	reached := false
	m.Subscribe(TypeKeyPressed, func(Event) bool { return true })
	m.Subscribe(TypeKeyPressed, func(Event) bool {
		reached = true
		return false
	})

	m.Dispatch(TypeKeyPressed, KeyPressedData{})
	assert.False(t, reached)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
	assert.Equal(t, "AppQuit", TypeAppQuit.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
