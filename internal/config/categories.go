package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"docvault/internal/model"
)

// CategoryOptions maps each category to the subcategory choices offered for it
// (names for Personal, departments for Professional).
type CategoryOptions map[model.Category][]string

type categoriesFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// DefaultCategories returns the built-in subcategory choices.
func DefaultCategories() CategoryOptions {
	return CategoryOptions{
		model.CategoryPersonal:     {"John", "Tom", "Emily", "Sarah", "Michael"},
		model.CategoryProfessional: {"Accounts", "HR", "IT", "Finance", "Marketing"},
	}
}

// LoadCategories reads subcategory choices from a YAML file of the form
//
//	categories:
//	  Personal: [John, Tom]
//	  Professional: [Accounts, HR]
//
// An empty path yields DefaultCategories. Categories missing from the file keep their defaults.
func LoadCategories(path string) (CategoryOptions, error) {
	opts := DefaultCategories()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse categories file: %w", err)
	}

	for name, values := range f.Categories {
		c := model.Category(name)
		if !c.Valid() {
			return nil, fmt.Errorf("unknown category %q in %s", name, path)
		}
		opts[c] = values
	}
	return opts, nil
}
