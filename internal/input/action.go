// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota
	ActionQuit             // Quit, refusing while there are unexported changes
	ActionForceQuit        // Quit without checking modified status
	ActionExport           // Write the export blob to the export path
	ActionYank             // Copy the export blob to the clipboard
	ActionUndo
	ActionScore // Show the fidelity summary

	// --- Cursor Movement ---
	ActionCursorLeft
	ActionCursorRight
	ActionCursorHome // First token or slot
	ActionCursorEnd  // Last token or slot
	ActionPrevSentence
	ActionNextSentence

	// --- Token Editing ---
	ActionPickDrop // Pick the token under the cursor, or drop the picked one
	ActionNudgeLeft
	ActionNudgeRight
	ActionDeleteMarker

	// --- Mode-dependent keys ---
	ActionInsertRune // Requires Rune argument
	ActionEnter
	ActionEscape
	ActionBackspace
	ActionEnterCommandMode
)

var actionNames = map[Action]string{
	ActionUnknown:          "Unknown",
	ActionQuit:             "Quit",
	ActionForceQuit:        "ForceQuit",
	ActionExport:           "Export",
	ActionYank:             "Yank",
	ActionUndo:             "Undo",
	ActionScore:            "Score",
	ActionCursorLeft:       "CursorLeft",
	ActionCursorRight:      "CursorRight",
	ActionCursorHome:       "CursorHome",
	ActionCursorEnd:        "CursorEnd",
	ActionPrevSentence:     "PrevSentence",
	ActionNextSentence:     "NextSentence",
	ActionPickDrop:         "PickDrop",
	ActionNudgeLeft:        "NudgeLeft",
	ActionNudgeRight:       "NudgeRight",
	ActionDeleteMarker:     "DeleteMarker",
	ActionInsertRune:       "InsertRune",
	ActionEnter:            "Enter",
	ActionEscape:           "Escape",
	ActionBackspace:        "Backspace",
	ActionEnterCommandMode: "EnterCommandMode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Set whenever the key was a plain rune, so command mode can insert it
}
