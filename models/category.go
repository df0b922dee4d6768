package models

import "strings"

// Category is one of the fixed civic data domains the dashboard covers.
type Category string

const (
	CategoryHealth      Category = "health"
	CategorySanitation  Category = "sanitation"
	CategoryBudget      Category = "budget"
	CategoryEducation   Category = "education"
	CategoryAgriculture Category = "agriculture"
	CategoryWelfare     Category = "welfare"
)

// Categories lists every category in sidebar order.
var Categories = []Category{
	CategoryHealth,
	CategorySanitation,
	CategoryBudget,
	CategoryEducation,
	CategoryAgriculture,
	CategoryWelfare,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the category id with its first letter upper-cased.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}
