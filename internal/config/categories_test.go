package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/model"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCategories(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := LoadCategories("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCategories(), opts)
		assert.Contains(t, opts[model.CategoryProfessional], "Finance")
	})

	t.Run("override one category", func(t *testing.T) {
		path := writeFile(t, "categories:\n  Personal: [Ana, Ben]\n")

		opts, err := LoadCategories(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Ben"}, opts[model.CategoryPersonal])
		assert.Equal(t, DefaultCategories()[model.CategoryProfessional], opts[model.CategoryProfessional])
	})

	t.Run("unknown category", func(t *testing.T) {
		path := writeFile(t, "categories:\n  Company: [X]\n")

		_, err := LoadCategories(path)
		assert.ErrorContains(t, err, `unknown category "Company"`)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "categories: [")

		_, err := LoadCategories(path)
		assert.ErrorContains(t, err, "parse categories file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read categories file")
	})
}
