package command

import "github.com/footprint-tools/botcmd/internal/presentation"

// PartialCommand is a command found in a table whose arguments have not
// been bound yet. Stream is positioned just after the designator.
type PartialCommand struct {
	Description *Description
	Designator  []string
	Stream      *Stream
}

// NewPartialCommand pairs a description with the stream it was found in.
func NewPartialCommand(desc *Description, designator []string, stream *Stream) *PartialCommand {
	return &PartialCommand{Description: desc, Designator: designator, Stream: stream}
}

// CompleteCommand is a command with every parameter bound.
type CompleteCommand struct {
	Description *Description
	Designator  []string

	// Arguments are the bound positional values in declaration order.
	Arguments []any
	// ImmediateArguments are the objects of every token read between the
	// start of binding and the first rest item, keywords included.
	ImmediateArguments []any
	Rest               []any
	Keywords           *ParsedKeywords

	source []presentation.Presentation
	start  int
}

// ToPartialCommand rebuilds the partial command this was bound from, with
// a fresh stream positioned where binding started.
func (c *CompleteCommand) ToPartialCommand() *PartialCommand {
	stream := NewStream(c.source)
	stream.SetPosition(c.start)
	return NewPartialCommand(c.Description, c.Designator, stream)
}

// Source returns every token of the original input.
func (c *CompleteCommand) Source() []presentation.Presentation {
	return c.source
}
