// Package invoker binds partial commands and runs their executors.
package invoker

import (
	"context"
	"strings"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// ErrUncaught marks an error produced from a panic in an executor.
var ErrUncaught = errors.New("uncaught error while executing command")

// Callbacks observe command failures. All fields are optional.
type Callbacks struct {
	// CommandFailed is called when an executor returns an error.
	CommandFailed func(info any, cmd *command.CompleteCommand, err error)
	// CommandUncaughtError is called when an executor panics. body is the
	// command as the user typed it.
	CommandUncaughtError func(info any, body string, err error)
	// ConvertUncaughtError turns a recovered panic into the error returned
	// from Invoke. Without it the panic is wrapped in ErrUncaught.
	ConvertUncaughtError func(err error) error
}

// Invoker parses and invokes commands from one table.
type Invoker struct {
	renderer    *presentation.TextRenderer
	translators *presentation.Translators
	callbacks   Callbacks
}

// New returns an Invoker. translators may be nil.
func New(renderer *presentation.TextRenderer, translators *presentation.Translators, callbacks Callbacks) *Invoker {
	return &Invoker{
		renderer:    renderer,
		translators: translators,
		callbacks:   callbacks,
	}
}

// Parse binds the arguments of partial. promptable enables
// *command.PromptRequiredError for parameters that declare a prompt.
func (i *Invoker) Parse(partial *command.PartialCommand, promptable bool) (*command.CompleteCommand, error) {
	binder := command.Binder{
		Renderer:    i.renderer,
		Translators: i.translators,
		Promptable:  promptable,
	}
	return binder.Bind(partial)
}

// Invoke runs the executor of cmd. A panic in the executor is recovered
// and returned as an error.
func (i *Invoker) Invoke(ctx context.Context, commandContext any, info any, cmd *command.CompleteCommand) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = i.uncaught(info, cmd, r)
		}
	}()

	executor := cmd.Description.Executor
	if executor == nil {
		return nil, errors.AssertionFailedf("command %q has no executor", cmd.Designator)
	}

	result, err = executor(ctx, commandContext, info, cmd.Keywords, cmd.Rest, cmd.Arguments...)
	if err != nil && i.callbacks.CommandFailed != nil {
		i.callbacks.CommandFailed(info, cmd, err)
	}
	return result, err
}

func (i *Invoker) uncaught(info any, cmd *command.CompleteCommand, recovered any) error {
	var cause error
	if e, ok := recovered.(error); ok {
		cause = errors.WithStack(e)
	} else {
		cause = errors.Newf("%v", recovered)
	}

	if i.callbacks.CommandUncaughtError != nil {
		body := i.renderer.RenderAll(cmd.ToPartialCommand().Stream.Source())
		i.callbacks.CommandUncaughtError(info, body, cause)
	}

	if i.callbacks.ConvertUncaughtError != nil {
		return i.callbacks.ConvertUncaughtError(cause)
	}
	return errors.Mark(errors.Wrapf(cause, "executing %q", strings.Join(cmd.Designator, " ")), ErrUncaught)
}
