package cli

import (
	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/dispatchers"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/invoker"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// Commands is the console bot's command table with its help command and
// the context translation of every command that needs one.
type Commands struct {
	Prefix   string
	Table    *dispatchers.Table
	Help     *command.Description
	Contexts *invoker.ContextTranslator[*Context]
}

type registration struct {
	designator []string
	desc       *command.Description
	translate  invoker.TranslationFunc[*Context]
}

// Build returns every command interned under prefix. The protection
// commands live in their own table, imported under "<prefix> protections".
func Build(prefix string, types *presentation.Standard, renderer *presentation.TextRenderer) (*Commands, error) {
	table := dispatchers.NewTable(prefix)
	for _, tr := range types.StringTranslators(renderer) {
		if err := table.InternTranslator(tr); err != nil {
			return nil, err
		}
	}

	contexts := invoker.NewContextTranslator[*Context]()
	b := builder{types: types}

	registrations := []registration{
		{[]string{"ban"}, b.ban(), banContext},
		{[]string{"unban"}, b.unban(), banContext},
		{[]string{"echo"}, b.echo(), nil},
		{[]string{"rooms", "list"}, b.roomsList(), roomsContext},
		{[]string{"rooms", "join"}, b.roomsJoin(), roomsContext},
	}
	if err := register(table, contexts, []string{prefix}, registrations); err != nil {
		return nil, err
	}

	protections := dispatchers.NewTable("protections")
	if err := register(protections, contexts, nil, []registration{
		{[]string{"enable"}, b.protectionSet(true), protectionsContext},
		{[]string{"disable"}, b.protectionSet(false), protectionsContext},
		{[]string{"list"}, b.protectionsList(), protectionsContext},
	}); err != nil {
		return nil, err
	}
	if err := table.ImportTable(protections, []string{prefix, "protections"}); err != nil {
		return nil, err
	}

	help := dispatchers.HelpCommand(table, prefix)
	if err := table.Intern(help, []string{prefix, "help"}); err != nil {
		return nil, err
	}

	return &Commands{
		Prefix:   prefix,
		Table:    table,
		Help:     help,
		Contexts: contexts,
	}, nil
}

func register(table *dispatchers.Table, contexts *invoker.ContextTranslator[*Context], base []string, regs []registration) error {
	for _, r := range regs {
		designator := append(append([]string{}, base...), r.designator...)
		if err := table.Intern(r.desc, designator); err != nil {
			return err
		}
		if r.translate == nil {
			continue
		}
		if err := contexts.Register(r.desc, r.translate); err != nil {
			return errors.Wrapf(err, "register context for %v", designator)
		}
	}
	return nil
}

func banContext(c *Context) any {
	return &BanContext{Sender: c.Sender, Bans: c.Bans, Rooms: c.Rooms.Joined()}
}

func roomsContext(c *Context) any {
	return &RoomsContext{Rooms: c.Rooms}
}

func protectionsContext(c *Context) any {
	return &ProtectionsContext{Protections: c.Protections}
}
