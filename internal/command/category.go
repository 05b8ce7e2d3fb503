package command

// Category groups commands in help output.
type Category int

const (
	CategoryUncategorized Category = iota
	CategoryModeration             // ban, unban, redact
	CategoryRooms                  // room membership and lists
	CategoryProtections            // imported protection tables
	CategoryInfo                   // help, echo, status
)

func (c Category) String() string {
	switch c {
	case CategoryModeration:
		return "moderation"
	case CategoryRooms:
		return "manage rooms"
	case CategoryProtections:
		return "protections"
	case CategoryInfo:
		return "information"
	default:
		return "other commands"
	}
}

var categoryOrder = []Category{
	CategoryModeration,
	CategoryRooms,
	CategoryProtections,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []Category {
	return categoryOrder
}
