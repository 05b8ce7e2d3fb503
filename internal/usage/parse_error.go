package usage

import (
	"strings"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/presentation"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

// FromParseError converts an argument or unexpected-argument error into a
// usage error that quotes the command as typed, marking the token that
// caused the failure. It reports false for any other error.
func FromParseError(err error, renderer *presentation.TextRenderer) (*Error, bool) {
	var argErr *command.ArgumentParseError
	if errors.As(err, &argErr) {
		return &Error{
			Kind:    ErrArgumentParse,
			Message: formatParseError(argErr.Message, argErr.Partial, argErr.Position, renderer),
		}, true
	}

	var unexpected *command.UnexpectedArgumentError
	if errors.As(err, &unexpected) {
		return &Error{
			Kind:    ErrUnexpectedArgument,
			Message: formatParseError(unexpected.Message, unexpected.Partial, unexpected.Position, renderer),
		}, true
	}

	return nil, false
}

func formatParseError(message string, partial *command.PartialCommand, position int, renderer *presentation.TextRenderer) string {
	var out strings.Builder
	out.WriteString(style.Error("There was a problem when parsing the command:"))
	out.WriteString(" ")
	out.WriteString(message)

	if partial == nil || partial.Stream == nil {
		return out.String()
	}

	out.WriteString("\n   ")
	out.WriteString(MarkToken(partial.Stream.Source(), position, renderer))

	if partial.Description != nil {
		out.WriteString("\nUsage: ")
		out.WriteString(style.Muted(partial.Description.Usage(partial.Designator)))
	}
	return out.String()
}

// MarkToken renders tokens back to text, wrapping the token at position
// in an error marker. A position past the last token marks the end of
// the input as the place an argument was expected.
func MarkToken(tokens []presentation.Presentation, position int, renderer *presentation.TextRenderer) string {
	parts := make([]string, 0, len(tokens)+1)
	for i, p := range tokens {
		text := renderer.Render(p)
		switch {
		case i == position:
			text = style.Error(">>" + text + "<<")
		case p.Type() != nil:
			text = style.Token(p.Type().Name(), text)
		}
		parts = append(parts, text)
	}
	if position >= len(tokens) {
		parts = append(parts, style.Error(">><<"))
	}
	return strings.Join(parts, " ")
}
