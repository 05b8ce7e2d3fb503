package presentation

import "strings"

// Keyword is the payload of an option token such as --dry-run.
type Keyword struct {
	Designator string
}

// NewKeyword strips any leading '-' or ':' characters from designator.
func NewKeyword(designator string) Keyword {
	return Keyword{Designator: strings.TrimLeft(designator, "-:")}
}

func (k Keyword) String() string {
	return "--" + k.Designator
}
