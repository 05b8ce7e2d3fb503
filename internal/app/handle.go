package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/dispatchers"
	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/log"
	"github.com/footprint-tools/botcmd/internal/presentation"
	"github.com/footprint-tools/botcmd/internal/usage"
)

// Info describes the message a command was dispatched from. It is the
// info value passed through the dispatcher and invoker callbacks.
type Info struct {
	Invocation string
	Sender     id.UserID
	Body       string
	Logger     *log.Logger
}

// Handle runs body as a command sent by sender and returns the text to
// reply with. User mistakes are returned as *usage.Error.
func (b *Bot) Handle(ctx context.Context, sender id.UserID, body string) (string, error) {
	info := &Info{
		Invocation: uuid.NewString(),
		Sender:     sender,
		Body:       body,
	}
	info.Logger = b.logger.With("invocation", info.Invocation, "sender", string(sender))

	partial, err := b.dispatcher.ParsePartialCommandFromBody(info, body)
	if err != nil {
		if errors.Is(err, dispatchers.ErrNoCommand) {
			info.Logger.Debug("not a command: %q", body)
			return "", usage.NoCommand()
		}
		return "", err
	}

	commandContext := b.commands.Contexts.Translate(partial.Description, b.state.WithSender(sender))

	complete, err := b.bind(ctx, commandContext, partial)
	if err != nil {
		return "", err
	}

	result, err := b.invoker.Invoke(ctx, commandContext, info, complete)
	if err != nil {
		var usageErr *usage.Error
		if errors.As(err, &usageErr) {
			return "", usageErr
		}
		return "", usage.CommandFailed(strings.Join(complete.Designator, " "), err)
	}

	info.Logger.Info("ran %s", strings.Join(complete.Designator, " "))
	return b.renderResult(result), nil
}

// bind parses the arguments of partial, asking the prompter for any
// parameter that declares a prompt and is missing. Each answer is
// appended to the stream and the whole command is bound again.
func (b *Bot) bind(ctx context.Context, commandContext any, partial *command.PartialCommand) (*command.CompleteCommand, error) {
	start := partial.Stream.Position()
	for {
		partial.Stream.SetPosition(start)
		complete, err := b.invoker.Parse(partial, b.promptable)
		if err == nil {
			return complete, nil
		}

		required, ok := command.AsPromptRequired(err)
		if !ok {
			return nil, b.parseError(err)
		}

		value, answered, err := b.prompt(ctx, commandContext, required)
		if err != nil {
			return nil, err
		}
		if !answered {
			// Nothing to offer, so bind without prompting to get the
			// ordinary missing argument error, or an empty rest.
			partial.Stream.SetPosition(start)
			complete, err := b.invoker.Parse(partial, false)
			if err != nil {
				return nil, b.parseError(err)
			}
			return complete, nil
		}
		partial.Stream.Append(value)
	}
}

// prompt asks for a value for the parameter in required. answered is
// false when the parameter has no suggestions to choose from.
func (b *Bot) prompt(ctx context.Context, commandContext any, required *command.PromptRequiredError) (presentation.Presentation, bool, error) {
	param := required.Parameter
	opts, err := param.Prompt(ctx, commandContext)
	if err != nil {
		return presentation.Presentation{}, false, errors.Wrapf(err, "prompt for %s", param.Name)
	}
	if len(opts.Suggestions) == 0 {
		return presentation.Presentation{}, false, nil
	}

	defaultLabel := ""
	if opts.Default != nil {
		defaultLabel = b.renderer.Render(*opts.Default)
	}

	choices := make([]domain.Choice, len(opts.Suggestions))
	defaultIndex := -1
	for i, s := range opts.Suggestions {
		label := b.renderer.Render(s)
		choices[i] = domain.Choice{Label: label, Description: s.Type().Name()}
		if defaultIndex < 0 && label == defaultLabel && opts.Default != nil {
			defaultIndex = i
		}
	}

	title := fmt.Sprintf("Choose %s (%s)", param.Name, param.Description)
	index, ok, err := b.prompter.Choose(ctx, title, choices, defaultIndex)
	if err != nil {
		return presentation.Presentation{}, false, errors.Wrapf(err, "prompt for %s", param.Name)
	}
	if !ok {
		return presentation.Presentation{}, false, usage.PromptCancelled(param.Name)
	}
	if index < 0 || index >= len(opts.Suggestions) {
		return presentation.Presentation{}, false, errors.AssertionFailedf("prompter chose %d of %d", index, len(opts.Suggestions))
	}
	return opts.Suggestions[index], true, nil
}

func (b *Bot) parseError(err error) error {
	if usageErr, ok := usage.FromParseError(err, b.renderer); ok {
		return usageErr
	}
	return err
}

func (b *Bot) renderResult(result any) string {
	switch r := result.(type) {
	case nil:
		return ""
	case string:
		return r
	case presentation.Presentation:
		return b.renderer.Render(r)
	default:
		return fmt.Sprint(r)
	}
}

func (b *Bot) logCurrentCommand(info any, tokens []presentation.Presentation) {
	if i, ok := info.(*Info); ok {
		i.Logger.Debug("dispatching %q", b.renderer.RenderAll(tokens))
	}
}

func (b *Bot) commandFailed(info any, cmd *command.CompleteCommand, err error) {
	if i, ok := info.(*Info); ok {
		i.Logger.Warn("%s failed: %v", strings.Join(cmd.Designator, " "), err)
	}
}

func (b *Bot) commandUncaughtError(info any, body string, err error) {
	if i, ok := info.(*Info); ok {
		i.Logger.Error("uncaught error running %q: %+v", body, err)
	}
}
