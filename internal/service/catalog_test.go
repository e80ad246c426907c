package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	catalog := NewCatalogService()

	categories := catalog.GetCategories()
	require.Len(t, categories, 4)
	categories[0].Name = "changed"
	assert.NotEqual(t, "changed", catalog.GetCategories()[0].Name)

	category := catalog.GetCategoryByID("design")
	require.NotNil(t, category)
	assert.Equal(t, "Design", category.Name)
	category.Name = "changed"
	assert.Equal(t, "Design", catalog.GetCategoryByID("design").Name)

	assert.Nil(t, catalog.GetCategoryByID("missing"))
	assert.NotEmpty(t, catalog.GetCatalog().Authors)
}
