// Package normaliser recognises messages addressed to the bot and rewrites
// them so the first word is always the bot's command prefix.
package normaliser

import (
	"regexp"
	"strings"
	"unicode"

	"maunium.net/go/mautrix/id"
)

// Options configures which forms of address are recognised.
type Options struct {
	// NormalisedPrefix is the first word of every normalised command.
	NormalisedPrefix string
	// SymbolPrefixes such as "!" introduce a command: "!bot ban".
	SymbolPrefixes []string
	// AdditionalPrefixes are accepted in place of NormalisedPrefix.
	AdditionalPrefixes []string
	// DisplayName returns the bot's current display name, which may also
	// be used to address it. Optional.
	DisplayName func() string
	// AllowOnlySymbolPrefixes lets a symbol prefix stand in for the whole
	// prefix: ".ban" is read as "bot ban".
	AllowOnlySymbolPrefixes bool
}

// Func normalises a message body. It reports false when the body is not
// a command for the bot.
type Func func(body string) (string, bool)

var markdownMention = regexp.MustCompile(`^\[([^\]]+)\]\([^)]*\)`)

// New returns a normaliser for the bot with the given user ID.
func New(botUserID id.UserID, opts Options) Func {
	n := normaliser{botUserID: string(botUserID), opts: opts}
	return n.normalise
}

type normaliser struct {
	botUserID string
	opts      Options
}

func (n normaliser) normalise(body string) (string, bool) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}

	if rest, ok := n.stripMention(body); ok {
		return n.join(rest), true
	}

	for _, symbol := range n.opts.SymbolPrefixes {
		after, found := strings.CutPrefix(body, symbol)
		if !found {
			continue
		}
		word, rest := splitWord(after)
		if n.isPrefix(word) {
			return n.join(rest), true
		}
		if n.opts.AllowOnlySymbolPrefixes && word != "" {
			return n.join(after), true
		}
	}

	return "", false
}

// stripMention removes a markdown mention, the bare user ID or the display
// name from the start of body, along with an optional trailing colon.
func (n normaliser) stripMention(body string) (string, bool) {
	if m := markdownMention.FindStringSubmatchIndex(body); m != nil {
		if strings.EqualFold(body[m[2]:m[3]], n.botUserID) {
			return trimAddressColon(body[m[1]:])
		}
	}

	names := []string{n.botUserID}
	if n.opts.DisplayName != nil {
		if name := strings.TrimSpace(n.opts.DisplayName()); name != "" {
			names = append(names, name)
		}
	}

	for _, name := range names {
		if len(body) < len(name) || !strings.EqualFold(body[:len(name)], name) {
			continue
		}
		if rest, ok := trimAddressColon(body[len(name):]); ok {
			return rest, true
		}
	}
	return "", false
}

// trimAddressColon accepts what follows a name: nothing, whitespace, or a
// colon. Anything else means the name was only the start of a longer word.
func trimAddressColon(rest string) (string, bool) {
	rest = strings.TrimPrefix(rest, ":")
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func (n normaliser) isPrefix(word string) bool {
	if word == "" {
		return false
	}
	if strings.EqualFold(word, n.opts.NormalisedPrefix) {
		return true
	}
	for _, p := range n.opts.AdditionalPrefixes {
		if strings.EqualFold(word, p) {
			return true
		}
	}
	return false
}

func (n normaliser) join(rest string) string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return n.opts.NormalisedPrefix
	}
	return n.opts.NormalisedPrefix + " " + rest
}

func splitWord(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
