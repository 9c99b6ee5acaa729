package client

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ExitMessage is displayed after the command, unless disabled
// (ex: --basic outputs, meant for scripts)
type ExitMessage struct {
	Message  string
	disabled bool
}

var exitMessage *ExitMessage

// InitExitMessage must be called before any command runs
func InitExitMessage() {
	exitMessage = &ExitMessage{}
}

// GetExitMessage returns the global ExitMessage
func GetExitMessage() *ExitMessage {
	return exitMessage
}

// Disable the message
func (msg *ExitMessage) Disable() {
	msg.disabled = true
}

// Display the message, if any
func (msg *ExitMessage) Display() {
	if msg == nil || msg.disabled || msg.Message == "" {
		return
	}
	cyan := color.New(color.FgHiCyan).SprintFunc()
	fmt.Fprintf(os.Stdout, "\n%s", cyan(msg.Message))
}
