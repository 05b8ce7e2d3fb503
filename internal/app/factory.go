package app

import (
	"io"

	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/cli"
	"github.com/footprint-tools/botcmd/internal/config"
	"github.com/footprint-tools/botcmd/internal/dispatchers"
	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/invoker"
	"github.com/footprint-tools/botcmd/internal/log"
	"github.com/footprint-tools/botcmd/internal/normaliser"
	"github.com/footprint-tools/botcmd/internal/presentation"
	"github.com/footprint-tools/botcmd/internal/reader"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

// Options configures the bot factory.
type Options struct {
	// Command options
	Prefix                  string
	SymbolPrefixes          []string
	AdditionalPrefixes      []string
	AllowOnlySymbolPrefixes bool
	DisplayName             string
	BotUserID               id.UserID

	// Prompt options. Prompting only happens when both are set.
	Promptable bool
	Prompter   domain.Prompter

	// Log options
	Logger *log.Logger

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions returns options read from cfg.
func DefaultOptions(cfg *config.Provider) Options {
	prefix, _ := cfg.Get("prefix")
	displayName, _ := cfg.Get("display_name")
	botUserID, _ := cfg.Get("bot_user_id")
	styleConfig, _ := cfg.GetAll()

	return Options{
		Prefix:                  prefix,
		SymbolPrefixes:          cfg.GetList("symbol_prefixes"),
		AdditionalPrefixes:      cfg.GetList("additional_prefixes"),
		AllowOnlySymbolPrefixes: cfg.GetBool("allow_only_symbol_prefixes"),
		DisplayName:             displayName,
		BotUserID:               id.UserID(botUserID),
		Promptable:              cfg.GetBool("prompt"),
		StyleEnabled:            cfg.GetBool("color"),
		StyleConfig:             styleConfig,
	}
}

// Bot is a console adaptor around one command table.
type Bot struct {
	renderer   *presentation.TextRenderer
	commands   *cli.Commands
	dispatcher *dispatchers.Dispatcher
	invoker    *invoker.Invoker
	state      *cli.Context
	prompter   domain.Prompter
	promptable bool
	logger     *log.Logger
}

// New creates a Bot with all dependencies wired up.
func New(opts Options) (*Bot, error) {
	if opts.Prefix == "" {
		opts.Prefix = "botcmd"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWriter(io.Discard, log.LevelError)
		logger.SetEnabled(false)
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	types, err := presentation.RegisterStandard(presentation.NewRegistry())
	if err != nil {
		return nil, err
	}
	renderer := types.TextRenderer()

	commands, err := cli.Build(opts.Prefix, types, renderer)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		renderer:   renderer,
		commands:   commands,
		state:      cli.NewContext(),
		prompter:   opts.Prompter,
		promptable: opts.Promptable && opts.Prompter != nil,
		logger:     logger,
	}

	normalise := normaliser.New(opts.BotUserID, normaliser.Options{
		NormalisedPrefix:        opts.Prefix,
		SymbolPrefixes:          opts.SymbolPrefixes,
		AdditionalPrefixes:      opts.AdditionalPrefixes,
		AllowOnlySymbolPrefixes: opts.AllowOnlySymbolPrefixes,
		DisplayName:             func() string { return opts.DisplayName },
	})

	b.dispatcher = dispatchers.NewDispatcher(commands.Table, commands.Help, reader.New(types), dispatchers.Callbacks{
		Normaliser:        dispatchers.Normaliser(normalise),
		LogCurrentCommand: b.logCurrentCommand,
	})
	b.invoker = invoker.New(renderer, commands.Table.Translators(), invoker.Callbacks{
		CommandFailed:        b.commandFailed,
		CommandUncaughtError: b.commandUncaughtError,
	})

	return b, nil
}

// NewForTesting creates a Bot with the default prefix, no prompter and no
// logging or styling.
func NewForTesting() *Bot {
	b, err := New(Options{
		Prefix:         "botcmd",
		SymbolPrefixes: []string{"!"},
		BotUserID:      "@botcmd:localhost",
		DisplayName:    "botcmd",
	})
	if err != nil {
		panic(err)
	}
	return b
}

// Commands returns the bot's command table.
func (b *Bot) Commands() *cli.Commands {
	return b.commands
}

// State returns the application context handed to commands.
func (b *Bot) State() *cli.Context {
	return b.state
}

// Close cleans up bot resources.
func Close(b *Bot) error {
	if b == nil || b.logger == nil {
		return nil
	}
	return b.logger.Close()
}
