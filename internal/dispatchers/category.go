package dispatchers

import "strings"

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGeneral                       // echo, help, exit
	CategoryVariables                     // set, get, unset, vars
	CategoryArithmetic                    // add, sum, scale
	CategoryHistory                       // history
	CategoryConfig                        // configuration
	CategoryCustom                        // commands loaded from definition files
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryVariables:
		return "work with variables"
	case CategoryArithmetic:
		return "arithmetic"
	case CategoryHistory:
		return "inspect history"
	case CategoryConfig:
		return "configure verbs"
	case CategoryCustom:
		return "custom commands"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGeneral,
	CategoryVariables,
	CategoryArithmetic,
	CategoryHistory,
	CategoryConfig,
	CategoryCustom,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}

// ParseCategory maps a short name such as "variables" to a category.
func ParseCategory(name string) CommandCategory {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "general":
		return CategoryGeneral
	case "variables", "vars":
		return CategoryVariables
	case "arithmetic", "math":
		return CategoryArithmetic
	case "history":
		return CategoryHistory
	case "config":
		return CategoryConfig
	case "custom", "":
		return CategoryCustom
	default:
		return CategoryUncategorized
	}
}
