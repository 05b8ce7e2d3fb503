package dispatchers

import (
	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// ErrNoCommand is returned when a body does not start with a command word.
var ErrNoCommand = errors.New("no command found in the body")

// Tokenizer turns a message body into presentations.
type Tokenizer interface {
	Read(text string) []presentation.Presentation
}

// Normaliser strips the bot prefix from a body. It reports false when the
// body is not addressed to the bot.
type Normaliser func(body string) (string, bool)

// Callbacks are optional hooks observed during dispatch.
type Callbacks struct {
	Normaliser        Normaliser
	LogCurrentCommand func(info any, tokens []presentation.Presentation)
}

// Dispatcher finds the command a message designates.
type Dispatcher struct {
	table     *Table
	help      *command.Description
	tokenizer Tokenizer
	callbacks Callbacks
}

// NewDispatcher returns a Dispatcher over table. help is used whenever no
// command in the table matches.
func NewDispatcher(table *Table, help *command.Description, tokenizer Tokenizer, callbacks Callbacks) *Dispatcher {
	if callbacks.Normaliser == nil {
		callbacks.Normaliser = func(body string) (string, bool) { return body, true }
	}
	return &Dispatcher{
		table:     table,
		help:      help,
		tokenizer: tokenizer,
		callbacks: callbacks,
	}
}

func (d *Dispatcher) Table() *Table { return d.table }

// ParsePartialCommandFromBody normalises and tokenizes body, then looks up
// the command it designates.
func (d *Dispatcher) ParsePartialCommandFromBody(info any, body string) (*command.PartialCommand, error) {
	normalised, ok := d.callbacks.Normaliser(body)
	if !ok {
		return nil, ErrNoCommand
	}

	tokens := d.tokenizer.Read(normalised)
	if len(tokens) == 0 {
		return nil, ErrNoCommand
	}
	if _, isString := tokens[0].Object().(string); !isString {
		return nil, ErrNoCommand
	}

	return d.ParsePartialCommandFromStream(info, command.NewStream(tokens))
}

// ParsePartialCommandFromStream looks up the command at the stream's
// position, falling back to the help command. The designator is every
// token consumed by the lookup.
func (d *Dispatcher) ParsePartialCommandFromStream(info any, stream *command.Stream) (*command.PartialCommand, error) {
	if d.callbacks.LogCurrentCommand != nil {
		d.callbacks.LogCurrentCommand(info, stream.Source())
	}

	desc, ok := d.table.FindMatchingCommand(stream)
	if !ok {
		desc = d.help
	}

	consumed := stream.Source()[:stream.Position()]
	designator := make([]string, 0, len(consumed))
	for _, p := range consumed {
		if word, isString := p.Object().(string); isString {
			designator = append(designator, word)
		}
	}

	return command.NewPartialCommand(desc, designator, stream), nil
}
