// Package commands holds the cobra command tree of the botcmd binary.
package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/footprint-tools/botcmd/internal/actions"
	"github.com/footprint-tools/botcmd/internal/app"
	"github.com/footprint-tools/botcmd/internal/config"
	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/log"
	"github.com/footprint-tools/botcmd/internal/ui/prompt"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

const defaultSender = "@user:localhost"

// state is shared by every command of one root.
type state struct {
	configPath string
	noColor    bool
	noPrompt   bool
	logLevel   string

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg *config.Provider
}

// NewRoot returns the botcmd command tree reading from in and writing to
// out and errOut.
func NewRoot(in io.Reader, out, errOut io.Writer) *cobra.Command {
	s := &state{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "botcmd",
		Short: "Parse and dispatch chat bot commands from the terminal",
		Long: `botcmd - a text command engine for chat bots, driven from the terminal.

Messages are read the way a bot in a chat room would read them: they must
be addressed to the bot (!botcmd ban ..., botcmd: ban ..., or a mention),
are split into typed arguments and dispatched to a command table.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (BOTCMD_* prefix)
  3. Config file (--config, default ` + "`botcmd.toml`" + ` in the user config dir)
  4. Default values

Examples:
  botcmd run '!botcmd ban @spam:example.org spam'
  botcmd run --sender @mod:example.org !botcmd rooms join '#lobby:example.org'
  botcmd repl
  botcmd config set prefix draupnir`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return log.Close()
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "Path to the configuration file")
	flags.BoolVar(&s.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&s.noPrompt, "no-prompt", false, "Never ask for missing arguments")
	flags.StringVar(&s.logLevel, "log-level", "", "Minimum log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(s))
	root.AddCommand(newReplCmd(s))
	root.AddCommand(newConfigCmd(s))
	root.AddCommand(newThemeCmd(s))
	root.AddCommand(newVersionCmd(s))

	return root
}

// setup loads configuration, styling and logging before any command runs.
func (s *state) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	styleConfig, _ := cfg.GetAll()
	style.Init(s.colorEnabled(), styleConfig)

	if cfg.GetBool("enable_log") {
		level := s.logLevel
		if level == "" {
			level, _ = cfg.Get("log_level")
		}
		logPath, _ := cfg.Get("log_path")
		if err := log.Init(logPath, log.ParseLevel(level)); err != nil {
			// Logging is optional; carry on without it.
			_, _ = io.WriteString(s.errOut, style.Warning("warning:")+" logging disabled: "+err.Error()+"\n")
		}
	}
	log.Debug("config loaded from %s", cfg.Path())
	return nil
}

func (s *state) colorEnabled() bool {
	return !s.noColor && s.cfg.GetBool("color") && isTerminal(s.out)
}

// prompter returns a terminal picker, or nil when prompting is off or no
// terminal is attached.
func (s *state) prompter() domain.Prompter {
	if s.noPrompt || s.cfg == nil || !s.cfg.GetBool("prompt") {
		return nil
	}
	picker := prompt.New()
	if !picker.Interactive() {
		return nil
	}
	return picker
}

func (s *state) newBot() (*app.Bot, error) {
	opts := app.DefaultOptions(s.cfg)
	opts.StyleEnabled = s.colorEnabled()
	opts.Prompter = s.prompter()
	opts.Promptable = opts.Promptable && opts.Prompter != nil
	opts.Logger = log.GetLogger()
	return app.New(opts)
}

func (s *state) session(sender string) actions.Session {
	return actions.Session{
		Sender: idOrDefault(sender),
		In:     s.in,
		Out:    s.out,
		Err:    s.errOut,
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
