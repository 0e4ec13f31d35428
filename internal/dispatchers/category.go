package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryParse                         // Parsing command lines
	CategoryServe                         // Long-running front ends
	CategoryConfig                        // Configuration
	CategoryInfo                          // Version and diagnostics
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryParse:
		return "parse command lines"
	case CategoryServe:
		return "run a front end"
	case CategoryConfig:
		return "configure verbparse"
	case CategoryInfo:
		return "information"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryParse,
	CategoryServe,
	CategoryConfig,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
