package actions

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/ui/style"
	"github.com/footprint-tools/botcmd/internal/usage"
)

// Handler runs one message through the bot and returns its reply.
type Handler func(ctx context.Context, sender id.UserID, body string) (string, error)

// Session is where a console conversation reads and writes.
type Session struct {
	Sender id.UserID
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	// Prompt is printed before each line is read. Empty when the input
	// is not a terminal.
	Prompt string
}

// RunMessage handles a single message and prints the reply.
func RunMessage(ctx context.Context, handle Handler, s Session, body string) error {
	reply, err := handle(ctx, s.Sender, body)
	if err != nil {
		return err
	}
	if reply != "" {
		_, _ = fmt.Fprintln(s.Out, reply)
	}
	return nil
}

// Repl handles one message per input line until EOF or ctx is done.
// Failures are printed and the loop carries on.
func Repl(ctx context.Context, handle Handler, s Session) error {
	scanner := bufio.NewScanner(s.In)
	for {
		if s.Prompt != "" {
			_, _ = fmt.Fprint(s.Out, s.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := RunMessage(ctx, handle, s, line); err != nil {
			_, _ = fmt.Fprintln(s.Err, FormatError(err))
		}
	}
	return scanner.Err()
}

// FormatError renders err for the terminal. Usage errors are already
// written for the user; anything else gets an error prefix.
func FormatError(err error) string {
	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		return usageErr.Message
	}
	return style.Error("error:") + " " + err.Error()
}
