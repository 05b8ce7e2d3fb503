package command

import (
	"github.com/footprint-tools/botcmd/internal/errors"
)

// ArgumentParseError reports a missing argument or a schema mismatch.
type ArgumentParseError struct {
	Message   string
	Parameter *Parameter
	Partial   *PartialCommand
	// Position is the stream index of the offending token, or the end of
	// the stream when the argument is missing.
	Position int
}

func (e *ArgumentParseError) Error() string { return e.Message }

// UnexpectedArgumentError reports a token the command has no place for.
type UnexpectedArgumentError struct {
	Message  string
	Partial  *PartialCommand
	Position int
}

func (e *UnexpectedArgumentError) Error() string { return e.Message }

// PromptRequiredError is not a failure: it tells the caller to ask the
// user for Parameter and bind again.
type PromptRequiredError struct {
	Message   string
	Parameter *Parameter
	Partial   *PartialCommand
	// Rest is true when the prompt is for the rest parameter.
	Rest bool
}

func (e *PromptRequiredError) Error() string { return e.Message }

// AsPromptRequired extracts a PromptRequiredError from err.
func AsPromptRequired(err error) (*PromptRequiredError, bool) {
	var prompt *PromptRequiredError
	if errors.As(err, &prompt) {
		return prompt, true
	}
	return nil, false
}

// IsParseError reports whether err is an argument or unexpected-argument error.
func IsParseError(err error) bool {
	var argErr *ArgumentParseError
	var unexpected *UnexpectedArgumentError
	return errors.As(err, &argErr) || errors.As(err, &unexpected)
}

var (
	_ error = (*ArgumentParseError)(nil)
	_ error = (*UnexpectedArgumentError)(nil)
	_ error = (*PromptRequiredError)(nil)
)
