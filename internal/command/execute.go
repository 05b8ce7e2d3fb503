package command

import (
	"context"

	"github.com/footprint-tools/botcmd/internal/errors"
)

// ExecuteOptions are the inputs of Execute that a bound command would
// otherwise carry.
type ExecuteOptions struct {
	Info     any
	Keywords map[string]any
	Rest     []any
}

// Execute calls the executor of desc with values that are already decoded,
// as though they had been bound from a message. Nothing is read or
// translated; keywords missing from opts read as unset. It lets one command
// run another and lets tests exercise an executor without a dispatcher.
func Execute(ctx context.Context, desc *Description, commandContext any, opts ExecuteOptions, args ...any) (any, error) {
	if desc.Executor == nil {
		return nil, errors.AssertionFailedf("command %q has no executor", desc.Summary)
	}
	if len(args) != len(desc.Parameters.Positional) {
		return nil, errors.AssertionFailedf("command %q takes %d arguments, got %d",
			desc.Summary, len(desc.Parameters.Positional), len(args))
	}
	keywords := NewParsedKeywords(desc.Parameters.Keywords, opts.Keywords)
	return desc.Executor(ctx, commandContext, opts.Info, keywords, opts.Rest, args...)
}
