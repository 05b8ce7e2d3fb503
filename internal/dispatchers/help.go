package dispatchers

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/presentation"
	"github.com/footprint-tools/botcmd/internal/ui/style"
	"github.com/footprint-tools/botcmd/internal/usage"
)

// HelpCommand describes a command that renders help for table. It is
// also the dispatcher's fallback, so its rest parameter accepts anything.
// Words that do not start with prefix are looked up with prefix prepended.
func HelpCommand(table *Table, prefix ...string) *command.Description {
	return command.Describe(command.Spec{
		Summary:  "Show the help for this bot's commands",
		Category: command.CategoryInfo,
		Rest: &command.Parameter{
			Name:        "command",
			Description: "The command to show help for",
			Acceptor:    presentation.Top(),
		},
		Executor: func(_ context.Context, _ any, _ any, _ *command.ParsedKeywords, rest []any, _ ...any) (any, error) {
			return RenderHelp(table, prefix, helpWords(rest))
		},
	})
}

func helpWords(rest []any) []string {
	words := make([]string, 0, len(rest))
	for _, r := range rest {
		if w, ok := r.(string); ok {
			words = append(words, w)
		}
	}
	return words
}

// RenderHelp renders the help for the command named by words, the group
// of commands below it, or the whole table when words is empty.
func RenderHelp(table *Table, prefix []string, words []string) (string, error) {
	if len(words) == 0 {
		return renderTableHelp(table), nil
	}

	node, consumed := table.walk(words)
	if consumed == 0 && len(prefix) > 0 {
		words = joinDesignator(prefix, words)
		node, consumed = table.walk(words)
	}

	if consumed < len(words) {
		suggestions := table.FindSimilarCommands(words[consumed], node.path, defaultSuggestionsCount)
		return "", usage.UnknownCommand(strings.Join(words, " "), suggestions...)
	}

	if node.entry != nil && len(node.children) == 0 {
		return renderCommandHelp(node.entry), nil
	}
	return renderGroupHelp(node), nil
}

// formatUsage styles the usage line with the designator in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the designator ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func renderTableHelp(table *Table) string {
	var out bytes.Buffer

	out.WriteString(style.Header("COMMANDS"))
	out.WriteString("\n\n")

	grouped := make(map[command.Category][]Entry)
	for _, e := range table.AllCommands() {
		grouped[e.Command.Category] = append(grouped[e.Command.Category], e)
	}

	for _, cat := range command.CategoryOrder() {
		entries := grouped[cat]
		if len(entries) == 0 {
			continue
		}

		out.WriteString(cat.String())
		out.WriteString("\n")

		sort.SliceStable(entries, func(i, j int) bool {
			return strings.Join(entries[i].Designator, " ") < strings.Join(entries[j].Designator, " ")
		})

		for _, e := range entries {
			fmt.Fprintf(&out, "   %s\n", formatUsage(e.Command.Usage(e.Designator)))
			if e.Command.Summary != "" {
				fmt.Fprintf(&out, "      %s\n", e.Command.Summary)
			}
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'help <command>' for detailed help on a specific command.\n")
	return out.String()
}

func renderCommandHelp(e *Entry) string {
	var out bytes.Buffer
	desc := e.Command

	out.WriteString(strings.Join(e.Designator, " "))
	if desc.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(desc.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(desc.Usage(e.Designator)))
	out.WriteString("\n\n")

	if desc.Description != "" {
		out.WriteString(desc.Description)
		out.WriteString("\n\n")
	}

	params := desc.Parameters.Positional
	if desc.Parameters.Rest != nil {
		params = append(append([]command.Parameter{}, params...), *desc.Parameters.Rest)
	}
	if len(params) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, p := range params {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", p.Name)), describeParameter(p.Description, p.Acceptor))
		}
		out.WriteString("\n")
	}

	keywords := desc.Parameters.Keywords.Descriptions
	if len(keywords) > 0 {
		names := make([]string, 0, len(keywords))
		for name := range keywords {
			names = append(names, name)
		}
		sort.Strings(names)

		out.WriteString("KEYWORDS\n")
		for _, name := range names {
			kp := keywords[name]
			flag := "--" + name
			text := kp.Description
			if !kp.IsFlag {
				text = describeParameter(kp.Description, kp.Acceptor)
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", flag)), text)
		}
		out.WriteString("\n")
	}

	return out.String()
}

func describeParameter(description string, acceptor presentation.Schema) string {
	expected := style.Muted("(" + acceptor.Describe() + ")")
	if description == "" {
		return expected
	}
	return description + " " + expected
}

func renderGroupHelp(node *tableNode) string {
	var out bytes.Buffer

	if len(node.path) > 0 {
		out.WriteString(strings.Join(node.path, " "))
		out.WriteString("\n\n")
	}

	var entries []*Entry
	collectEntries(node, &entries)
	sort.Slice(entries, func(i, j int) bool {
		return strings.Join(entries[i].Designator, " ") < strings.Join(entries[j].Designator, " ")
	})

	out.WriteString("COMMANDS\n")
	for _, e := range entries {
		fmt.Fprintf(&out, "   %s  %s\n", formatUsage(e.Command.Usage(e.Designator)), e.Command.Summary)
	}
	return out.String()
}

func collectEntries(node *tableNode, out *[]*Entry) {
	if node.entry != nil {
		*out = append(*out, node.entry)
	}
	for _, child := range node.children {
		collectEntries(child, out)
	}
}
