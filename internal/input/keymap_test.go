package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	testCases := []struct {
		desc string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionCursorLeft}},
		{"shift left nudges", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionNudgeLeft}},
		{"shift right nudges", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), ActionEvent{Action: ActionNudgeRight}},
		{"up is previous sentence", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionEvent{Action: ActionPrevSentence}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionEnter}},
		{"space picks", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionEvent{Action: ActionPickDrop, Rune: ' '}},
		{"colon", tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModNone), ActionEvent{Action: ActionEnterCommandMode, Rune: ':'}},
		{"undo rune", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), ActionEvent{Action: ActionUndo, Rune: 'u'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModShift), ActionEvent{Action: ActionNudgeRight, Rune: 'L'}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'z'}},
		{"ctrl+s exports", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionExport}},
		{"ctrl+z undoes", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteMarker}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionBackspace}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionEscape}},
		{"alt rune unmapped", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ProcessEvent(tc.ev))
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind('z', ActionUndo)
	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.Equal(t, ActionUndo, got.Action)
	assert.Equal(t, "Undo", got.Action.String())
}
