package models

import "strings"

// Category is one of the fixed quiz topics.
type Category string

const (
	CategoryCommunication Category = "communication"
	CategoryAptitude      Category = "aptitude"
	CategoryCoding        Category = "coding"
	CategoryGeneral       Category = "general"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryCommunication,
	CategoryAptitude,
	CategoryCoding,
	CategoryGeneral,
}

var displayNames = map[Category]string{
	CategoryCommunication: "Communication",
	CategoryAptitude:      "Aptitude",
	CategoryCoding:        "Coding",
	CategoryGeneral:       "General Knowledge",
}

// DisplayName returns the human name of a category, or the key itself when unknown.
func DisplayName(category string) string {
	if name, ok := displayNames[Category(category)]; ok {
		return name
	}

	return category
}

// IsKnown reports whether c is one of Categories.
func (c Category) IsKnown() bool {
	_, ok := displayNames[c]
	return ok
}

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsKnown()
}

// OrGeneral maps unknown categories to general.
func (c Category) OrGeneral() Category {
	if c.IsKnown() {
		return c
	}

	return CategoryGeneral
}
