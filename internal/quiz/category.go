package quiz

import "fmt"

// Category is a scoring category. The set is closed: catalog loading
// rejects anything outside it so scoring never meets an unknown key.
type Category string

const (
	CategoryGenderAlignment      Category = "gender_alignment"
	CategoryRomanticAttraction   Category = "romantic_attraction"
	CategorySexualAttraction     Category = "sexual_attraction"
	CategoryRelationshipOpenness Category = "relationship_openness"
	CategoryRomanticTarget       Category = "romantic_target"
	CategoryExpression           Category = "expression"
)

// allCategories fixes the iteration order used when initializing a tally.
var allCategories = []Category{
	CategoryGenderAlignment,
	CategoryRomanticAttraction,
	CategorySexualAttraction,
	CategoryRelationshipOpenness,
	CategoryRomanticTarget,
	CategoryExpression,
}

// Categories returns every known category.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func (c Category) valid() bool {
	switch c {
	case CategoryGenderAlignment, CategoryRomanticAttraction, CategorySexualAttraction,
		CategoryRelationshipOpenness, CategoryRomanticTarget, CategoryExpression:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory validates a raw category string from catalog data.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.valid() {
		return "", fmt.Errorf("unknown score category %q", s)
	}
	return c, nil
}
