package category

import "strings"

// Category is a top-level product grouping. The navigation dropdown renders
// the full tree: every category with its sub-categories nested.
type Category struct {
	ID            int           `json:"categoryId"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"subCategories"`
}

// SubCategory belongs to exactly one Category and is the parent of
// products. Slug is derived from the name, never stored.
type SubCategory struct {
	ID         int    `json:"subCategoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int    `json:"categoryId"`
}

// Slugify derives the URL-safe routing slug for a sub-category name:
// lowercased, runs of whitespace collapsed to single hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
