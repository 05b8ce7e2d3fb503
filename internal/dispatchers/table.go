package dispatchers

import (
	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// Table maps designators to commands. It is built at startup with Intern
// and ImportTable and is read-only afterwards, so concurrent lookups are
// safe without locking.
type Table struct {
	name        string
	root        *tableNode
	entries     []*Entry
	imports     []Import
	translators *presentation.Translators
}

// NewTable returns an empty table.
func NewTable(name string) *Table {
	return &Table{
		name:        name,
		root:        newTableNode("", nil),
		translators: presentation.NewTranslators(),
	}
}

func (t *Table) Name() string { return t.name }

// Intern registers cmd under designator. A designator that already has a
// command returns ErrDuplicateCommand and leaves the table unchanged.
func (t *Table) Intern(cmd *command.Description, designator []string) error {
	return t.intern(cmd, designator, t)
}

// MustIntern is like Intern but panics on error.
func (t *Table) MustIntern(cmd *command.Description, designator ...string) *Table {
	if err := t.Intern(cmd, designator); err != nil {
		panic(err)
	}
	return t
}

func (t *Table) intern(cmd *command.Description, designator []string, source *Table) error {
	if existing := resolveNode(t.root, designator); existing != nil && existing.entry != nil {
		return errors.Wrapf(errors.ErrDuplicateCommand, "designator %q in table %s", designator, t.name)
	}

	current := t.root
	for _, word := range designator {
		child, ok := current.children[word]
		if !ok {
			child = newTableNode(word, current)
		}
		current = child
	}

	current.entry = &Entry{
		Designator: append([]string{}, designator...),
		Command:    cmd,
		Source:     source,
	}
	t.entries = append(t.entries, current.entry)
	return nil
}

// FindMatchingCommand consumes designator words from stream while they
// name a child in the trie and returns the deepest command on that path.
// The stream is left just after that command's designator, or rewound to
// where it started when no command was found.
func (t *Table) FindMatchingCommand(stream *command.Stream) (*command.Description, bool) {
	entry := t.findMatchingEntry(stream)
	if entry == nil {
		return nil, false
	}
	return entry.Command, true
}

func (t *Table) findMatchingEntry(stream *command.Stream) *Entry {
	type match struct {
		entry *Entry
		pos   int
	}

	found := command.SavingPositionIf(stream, func(s *command.Stream) match {
		best := match{entry: t.root.entry, pos: s.Position()}
		current := t.root
		for {
			next, ok := s.Peek()
			if !ok {
				break
			}
			word, isString := next.Object().(string)
			if !isString {
				break
			}
			child, ok := current.children[word]
			if !ok {
				break
			}
			s.Read()
			current = child
			if child.entry != nil {
				best = match{entry: child.entry, pos: s.Position()}
			}
		}
		if best.entry != nil {
			s.SetPosition(best.pos)
		}
		return best
	}, func(m match) bool { return m.entry == nil })

	return found.entry
}

// ImportTable interns every command of other under baseDesignator. If any
// resulting designator already resolves to a command nothing is imported
// and ErrImportConflict is returned.
func (t *Table) ImportTable(other *Table, baseDesignator []string) error {
	incoming := other.AllCommands()

	for _, entry := range incoming {
		designator := joinDesignator(baseDesignator, entry.Designator)
		if t.resolves(designator) {
			return errors.Wrapf(errors.ErrImportConflict, "command %q from table %s", designator, other.name)
		}
	}

	for _, entry := range incoming {
		designator := joinDesignator(baseDesignator, entry.Designator)
		if err := t.intern(entry.Command, designator, entry.Source); err != nil {
			return errors.AssertionFailedf("import of %q failed after pre-check: %v", designator, err)
		}
	}

	t.imports = append(t.imports, Import{
		Table:          other,
		BaseDesignator: append([]string{}, baseDesignator...),
	})
	return nil
}

// resolves reports whether the whole designator leads to a command.
func (t *Table) resolves(designator []string) bool {
	_, ok := t.Lookup(designator)
	return ok
}

func joinDesignator(base, rest []string) []string {
	out := make([]string, 0, len(base)+len(rest))
	out = append(out, base...)
	return append(out, rest...)
}

// AllCommands returns every command in the table, imported ones included.
func (t *Table) AllCommands() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = *e
	}
	return out
}

// ExportedCommands returns only the commands interned directly in this table.
func (t *Table) ExportedCommands() []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Source == t {
			out = append(out, *e)
		}
	}
	return out
}

// ImportedTables returns the tables imported into this one.
func (t *Table) ImportedTables() []Import {
	return append([]Import{}, t.imports...)
}

// InternTranslator adds a presentation type translator used while binding
// commands from this table.
func (t *Table) InternTranslator(tr presentation.Translator) error {
	return t.translators.Intern(tr)
}

// Translators returns the table's translators.
func (t *Table) Translators() *presentation.Translators {
	return t.translators
}

// Lookup returns the command interned at exactly designator.
func (t *Table) Lookup(designator []string) (Entry, bool) {
	node := resolveNode(t.root, designator)
	if node == nil || node.entry == nil {
		return Entry{}, false
	}
	return *node.entry, true
}
