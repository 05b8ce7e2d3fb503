package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the help command is given words that do
// not name a command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a command. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are\n"
		for _, s := range suggestions {
			msg += "   " + s + "\n"
		}
		msg = strings.TrimSuffix(msg, "\n")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// NoCommand is returned when a message is addressed to the bot but does
// not start with a command word.
func NoCommand() *Error {
	return &Error{
		Kind:    ErrNoCommand,
		Message: "No command found in the message. See 'help'.",
	}
}

// PromptCancelled is returned when the user dismisses a prompt.
func PromptCancelled(parameter string) *Error {
	return &Error{
		Kind:    ErrPromptCancelled,
		Message: fmt.Sprintf("No value was chosen for '%s'.", parameter),
	}
}

// CommandFailed wraps an executor failure for display.
func CommandFailed(command string, err error) *Error {
	return &Error{
		Kind:    ErrCommandFailed,
		Message: fmt.Sprintf("Failed to run '%s': %v", command, err),
	}
}

// InvalidConfigKey is returned for a configuration key with no default.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a configuration key.", key),
	}
}
