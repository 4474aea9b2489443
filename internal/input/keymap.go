// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For plain rune bindings in normal mode
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyLeft] = ActionCursorLeft
	p.keymap[tcell.KeyRight] = ActionCursorRight
	p.keymap[tcell.KeyUp] = ActionPrevSentence
	p.keymap[tcell.KeyDown] = ActionNextSentence
	p.keymap[tcell.KeyPgUp] = ActionPrevSentence
	p.keymap[tcell.KeyPgDn] = ActionNextSentence
	p.keymap[tcell.KeyHome] = ActionCursorHome
	p.keymap[tcell.KeyEnd] = ActionCursorEnd
	p.keymap[tcell.KeyEnter] = ActionEnter
	p.keymap[tcell.KeyBackspace] = ActionBackspace
	p.keymap[tcell.KeyBackspace2] = ActionBackspace
	p.keymap[tcell.KeyDelete] = ActionDeleteMarker
	p.keymap[tcell.KeyEscape] = ActionEscape
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionExport
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlY] = ActionYank

	// --- Shift+Arrow nudges the token under the cursor ---
	shiftMap := make(Keymap)
	shiftMap[tcell.KeyLeft] = ActionNudgeLeft
	shiftMap[tcell.KeyRight] = ActionNudgeRight
	p.modKeymap[tcell.ModShift] = shiftMap

	// --- Normal-mode runes ---
	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap[' '] = ActionPickDrop
	p.runeKeymap['h'] = ActionCursorLeft
	p.runeKeymap['l'] = ActionCursorRight
	p.runeKeymap['k'] = ActionPrevSentence
	p.runeKeymap['j'] = ActionNextSentence
	p.runeKeymap['p'] = ActionPrevSentence
	p.runeKeymap['n'] = ActionNextSentence
	p.runeKeymap['0'] = ActionCursorHome
	p.runeKeymap['$'] = ActionCursorEnd
	p.runeKeymap['H'] = ActionNudgeLeft
	p.runeKeymap['L'] = ActionNudgeRight
	p.runeKeymap['x'] = ActionDeleteMarker
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap['s'] = ActionScore
	p.runeKeymap['q'] = ActionQuit
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// The current mode is not considered here; the mode handler interprets the action.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// 1. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Control keys already carry Ctrl in the key itself
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Plain runes, with or without Shift
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		r := ev.Rune()
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: r}
	}

	// 3. Special keys
	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}

	return ActionEvent{Action: ActionUnknown}
}

// Bind maps a plain rune to an action, replacing any existing binding.
func (p *InputProcessor) Bind(r rune, action Action) {
	p.runeKeymap[r] = action
}
