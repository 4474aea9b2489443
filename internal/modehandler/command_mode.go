package modehandler

import (
	"strings"

	"github.com/bethropolis/mathtag/internal/input"
	"github.com/bethropolis/mathtag/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand. Every printable key is
// text here, including those bound to normal-mode actions.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	if actionEvent.Rune != 0 {
		mh.cmdBuffer = append(mh.cmdBuffer, actionEvent.Rune)
		mh.statusBar.SetCommandLine(":" + string(mh.cmdBuffer))
		return true
	}

	switch actionEvent.Action {
	case input.ActionBackspace:
		if len(mh.cmdBuffer) == 0 {
			mh.leaveCommandMode()
			logger.DebugTagf("mode", "ModeHandler: Exiting Command Mode via Backspace")
			return true
		}
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]

	case input.ActionEnter:
		cmd := string(mh.cmdBuffer)
		mh.leaveCommandMode()
		mh.executeCommand(cmd)
		return true

	case input.ActionEscape, input.ActionQuit:
		mh.leaveCommandMode()
		logger.DebugTagf("mode", "ModeHandler: Canceled Command Mode via Escape")
		return true

	case input.ActionForceQuit:
		mh.quit()
		return false

	default:
		return false
	}

	mh.statusBar.SetCommandLine(":" + string(mh.cmdBuffer))
	return true
}

func (mh *ModeHandler) leaveCommandMode() {
	mh.currentMode = ModeNormal
	mh.cmdBuffer = mh.cmdBuffer[:0]
	mh.statusBar.ClearCommandLine()
	mh.statusBar.SetEditorMode(ModeNormal.String())
}

// executeCommand parses and runs a command line such as "w out.txt".
func (mh *ModeHandler) executeCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("mode", "ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		logger.Warnf("ModeHandler: Command ':%s' failed: %v", cmdName, err)
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}

// ExecuteCommand runs a command line as if typed after ':'.
func (mh *ModeHandler) ExecuteCommand(cmdStr string) {
	mh.executeCommand(cmdStr)
}
