package dispatchers

import "github.com/footprint-tools/botcmd/internal/command"

// Entry is a command as seen from a table: its full designator and the
// table that originally interned it.
type Entry struct {
	Designator []string
	Command    *command.Description
	Source     *Table
}

// Import records a table imported under a base designator.
type Import struct {
	Table          *Table
	BaseDesignator []string
}

// tableNode is one level of the designator trie.
type tableNode struct {
	name     string
	path     []string
	entry    *Entry
	children map[string]*tableNode
}

func newTableNode(name string, parent *tableNode) *tableNode {
	node := &tableNode{
		name:     name,
		children: make(map[string]*tableNode),
	}
	if parent != nil {
		node.path = append(append([]string{}, parent.path...), name)
		parent.children[name] = node
	}
	return node
}

// resolveNode walks path without creating nodes.
func resolveNode(root *tableNode, path []string) *tableNode {
	current := root
	for _, p := range path {
		child, ok := current.children[p]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}
