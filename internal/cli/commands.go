package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/matrixid"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

var banReasons = []string{"spam", "abuse", "code of conduct violation"}

type builder struct {
	types *presentation.Standard
}

func capability[T any](commandContext any) (T, error) {
	c, ok := commandContext.(T)
	if !ok {
		var zero T
		return zero, errors.AssertionFailedf("unexpected command context %T", commandContext)
	}
	return c, nil
}

func (b builder) ban() *command.Description {
	return command.Describe(command.Spec{
		Summary:     "Ban an entity from the protected rooms",
		Description: "Records a ban for a user, server or glob in every joined room, or only in --room.",
		Category:    command.CategoryModeration,
		Parameters:  []command.Parameter{entityArg(b.types)},
		Rest:        reasonRest(b.types, b.promptReason),
		Keywords:    banKeywords(b.types),
		Executor: func(_ context.Context, commandContext any, _ any, keywords *command.ParsedKeywords, rest []any, args ...any) (any, error) {
			bc, err := capability[*BanContext](commandContext)
			if err != nil {
				return nil, err
			}

			entity := fmt.Sprint(args[0])
			reason := joinWords(rest)
			if reason == "" {
				reason = "<no reason supplied>"
			}

			rooms := roomNames(bc.Rooms)
			if room, ok := keywords.Value("room", nil).(matrixid.RoomReference); ok {
				rooms = []string{room.String()}
			}
			if len(rooms) == 0 {
				return nil, errors.WithHint(errors.New("the bot is not in any rooms"), "join one with 'rooms join'")
			}

			target := strings.Join(rooms, ", ")
			if keywords.Flag("dry-run") {
				return fmt.Sprintf("Would ban %s from %s: %s", entity, target, reason), nil
			}
			for _, room := range rooms {
				bc.Bans.Add(Ban{Entity: entity, Reason: reason, Room: room, Sender: bc.Sender})
			}
			return fmt.Sprintf("Banned %s from %s: %s", entity, target, reason), nil
		},
	})
}

func (b builder) promptReason(context.Context, any) (command.PromptOptions, error) {
	suggestions := make([]presentation.Presentation, len(banReasons))
	for i, reason := range banReasons {
		suggestions[i] = presentation.New(b.types.String, reason)
	}
	return command.PromptOptions{Suggestions: suggestions, Default: &suggestions[0]}, nil
}

func (b builder) unban() *command.Description {
	return command.Describe(command.Spec{
		Summary:    "Remove every ban of an entity",
		Category:   command.CategoryModeration,
		Parameters: []command.Parameter{entityArg(b.types)},
		Executor: func(_ context.Context, commandContext any, _ any, _ *command.ParsedKeywords, _ []any, args ...any) (any, error) {
			bc, err := capability[*BanContext](commandContext)
			if err != nil {
				return nil, err
			}
			entity := fmt.Sprint(args[0])
			if !bc.Bans.Remove(entity) {
				return nil, errors.Newf("%s is not banned", entity)
			}
			return fmt.Sprintf("Unbanned %s", entity), nil
		},
	})
}

func (b builder) echo() *command.Description {
	return command.Describe(command.Spec{
		Summary:  "Repeat the arguments back",
		Category: command.CategoryInfo,
		Rest:     wordsRest(),
		Keywords: echoKeywords(),
		Executor: func(_ context.Context, _ any, _ any, keywords *command.ParsedKeywords, rest []any, _ ...any) (any, error) {
			parts := []string{joinWords(rest)}
			for _, name := range keywords.Names() {
				switch v := keywords.Value(name, nil).(type) {
				case bool:
					if v {
						parts = append(parts, "--"+name)
					}
				default:
					parts = append(parts, fmt.Sprintf("--%s %v", name, v))
				}
			}
			return strings.TrimSpace(strings.Join(parts, " ")), nil
		},
	})
}

func (b builder) roomsList() *command.Description {
	return command.Describe(command.Spec{
		Summary:  "List the rooms the bot has joined",
		Category: command.CategoryRooms,
		Executor: func(_ context.Context, commandContext any, _ any, _ *command.ParsedKeywords, _ []any, _ ...any) (any, error) {
			rc, err := capability[*RoomsContext](commandContext)
			if err != nil {
				return nil, err
			}
			joined := roomNames(rc.Rooms.Joined())
			if len(joined) == 0 {
				return "Not in any rooms.", nil
			}
			return fmt.Sprintf("Joined rooms (%d):\n  %s", len(joined), strings.Join(joined, "\n  ")), nil
		},
	})
}

func (b builder) roomsJoin() *command.Description {
	return command.Describe(command.Spec{
		Summary:    "Join a room",
		Category:   command.CategoryRooms,
		Parameters: []command.Parameter{roomArg(b.types, b.promptUnjoinedRoom)},
		Executor: func(_ context.Context, commandContext any, _ any, _ *command.ParsedKeywords, _ []any, args ...any) (any, error) {
			rc, err := capability[*RoomsContext](commandContext)
			if err != nil {
				return nil, err
			}
			room, ok := args[0].(matrixid.RoomReference)
			if !ok {
				return nil, errors.AssertionFailedf("room argument is %T", args[0])
			}
			if !rc.Rooms.Join(room) {
				return nil, errors.Newf("already joined %s", room)
			}
			return fmt.Sprintf("Joined %s", room), nil
		},
	})
}

func (b builder) promptUnjoinedRoom(_ context.Context, commandContext any) (command.PromptOptions, error) {
	rc, err := capability[*RoomsContext](commandContext)
	if err != nil {
		return command.PromptOptions{}, err
	}
	var suggestions []presentation.Presentation
	for _, room := range rc.Rooms.Unjoined() {
		suggestions = append(suggestions, b.types.Room(room))
	}
	return command.PromptOptions{Suggestions: suggestions}, nil
}

func (b builder) protectionSet(enable bool) *command.Description {
	verb, past := "Disable", "Disabled"
	if enable {
		verb, past = "Enable", "Enabled"
	}
	return command.Describe(command.Spec{
		Summary:    verb + " a protection",
		Category:   command.CategoryProtections,
		Parameters: []command.Parameter{protectionArg(b.types, b.promptProtection(!enable))},
		Executor: func(_ context.Context, commandContext any, _ any, _ *command.ParsedKeywords, _ []any, args ...any) (any, error) {
			pc, err := capability[*ProtectionsContext](commandContext)
			if err != nil {
				return nil, err
			}
			name := fmt.Sprint(args[0])
			if !pc.Protections.Set(name, enable) {
				return nil, errors.Newf("no protection named %s", name)
			}
			return fmt.Sprintf("%s %s", past, name), nil
		},
	})
}

// promptProtection suggests the protections currently in state enabled.
func (b builder) promptProtection(enabled bool) command.PromptFunc {
	return func(_ context.Context, commandContext any) (command.PromptOptions, error) {
		pc, err := capability[*ProtectionsContext](commandContext)
		if err != nil {
			return command.PromptOptions{}, err
		}
		var suggestions []presentation.Presentation
		for _, name := range pc.Protections.Names(enabled) {
			suggestions = append(suggestions, presentation.New(b.types.String, name))
		}
		return command.PromptOptions{Suggestions: suggestions}, nil
	}
}

func (b builder) protectionsList() *command.Description {
	return command.Describe(command.Spec{
		Summary:  "List enabled and disabled protections",
		Category: command.CategoryProtections,
		Executor: func(_ context.Context, commandContext any, _ any, _ *command.ParsedKeywords, _ []any, _ ...any) (any, error) {
			pc, err := capability[*ProtectionsContext](commandContext)
			if err != nil {
				return nil, err
			}
			var out strings.Builder
			out.WriteString("Enabled: ")
			out.WriteString(listOrNone(pc.Protections.Names(true)))
			out.WriteString("\nDisabled: ")
			out.WriteString(listOrNone(pc.Protections.Names(false)))
			return out.String(), nil
		},
	})
}

func joinWords(items []any) string {
	words := make([]string, len(items))
	for i, item := range items {
		words[i] = fmt.Sprint(item)
	}
	return strings.Join(words, " ")
}

func roomNames(rooms []matrixid.RoomReference) []string {
	names := make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = room.String()
	}
	return names
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
