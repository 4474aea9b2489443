package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name    string
	initErr error
	log     *[]string
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Initialize(EditorAPI) error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Shutdown() error {
	*r.log = append(*r.log, "stop "+r.name)
	return nil
}

func TestManagerLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	require.NoError(t, m.Register(&recorder{name: "b", log: &log}))
	require.NoError(t, m.Register(&recorder{name: "a", log: &log}))

	require.NoError(t, m.InitializePlugins(nil))
	m.ShutdownPlugins()

	assert.Equal(t, []string{"init b", "init a", "stop a", "stop b"}, log)
	assert.Equal(t, []string{"a", "b"}, m.Names())

	p, ok := m.GetPlugin("a")
	require.True(t, ok)
	assert.Equal(t, "a", p.Name())
	_, ok = m.GetPlugin("missing")
	assert.False(t, ok)
}

func TestManagerRegisterRejects(t *testing.T) {
	var log []string
	m := NewManager()
	assert.Error(t, m.Register(&recorder{log: &log}))
	require.NoError(t, m.Register(&recorder{name: "x", log: &log}))
	assert.Error(t, m.Register(&recorder{name: "x", log: &log}))
}

func TestManagerInitFailureContinues(t *testing.T) {
	var log []string
	m := NewManager()
	require.NoError(t, m.Register(&recorder{name: "bad", initErr: errors.New("nope"), log: &log}))
	require.NoError(t, m.Register(&recorder{name: "good", log: &log}))

	err := m.InitializePlugins(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad: nope")
	assert.Equal(t, []string{"init bad", "init good"}, log)
}
