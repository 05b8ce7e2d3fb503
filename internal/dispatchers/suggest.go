package dispatchers

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 3
)

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults designator words below path
// that are within a small edit distance of input.
func (t *Table) FindSimilarCommands(input string, path []string, maxResults int) []string {
	node := resolveNode(t.root, path)
	if node == nil {
		return nil
	}

	input = strings.ToLower(input)
	var suggestions []suggestion
	for name := range node.children {
		dist := levenshtein.ComputeDistance(input, strings.ToLower(name))
		if dist <= maxSuggestionDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = strings.Join(append(append([]string{}, path...), s.name), " ")
	}
	return result
}

// walk follows words through the trie as far as it can and returns the
// deepest node reached together with the number of words consumed.
func (t *Table) walk(words []string) (*tableNode, int) {
	current := t.root
	for i, w := range words {
		child, ok := current.children[w]
		if !ok {
			return current, i
		}
		current = child
	}
	return current, len(words)
}
