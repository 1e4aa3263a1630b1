package model

// Package model contains domain models shared by the catalog, the service and the document stores.
// Keep it free of behaviour beyond small value helpers.

// Category is the top level of the two-level catalog ("major head").
type Category string

const (
	// CategoryAll means no category filter.
	CategoryAll          Category = ""
	CategoryPersonal     Category = "Personal"
	CategoryProfessional Category = "Professional"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryPersonal, CategoryProfessional}

// Valid reports whether c is one of the selectable categories.
func (c Category) Valid() bool {
	return c == CategoryPersonal || c == CategoryProfessional
}

// Tag is the wire shape of a single tag, used by both the search and the upload contracts.
type Tag struct {
	Name string `json:"tag_name"`
}
