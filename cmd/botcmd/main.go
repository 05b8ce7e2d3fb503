package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/footprint-tools/botcmd/cmd/botcmd/commands"
	"github.com/footprint-tools/botcmd/internal/actions"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/usage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root := commands.NewRoot(in, out, errOut)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(errOut, actions.FormatError(err))
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
