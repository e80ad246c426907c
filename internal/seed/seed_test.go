package seed

import (
	"testing"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosts(t *testing.T) {
	posts := Posts()
	require.Len(t, posts, 4)

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)

		assert.True(t, p.IsPublished(), p.ID)
		assert.NotNil(t, p.PublishedAt, p.ID)
		assert.Equal(t, richtext.TypeDoc, p.Content.Type, p.ID)
		assert.False(t, p.UpdatedAt.Before(p.CreatedAt), p.ID)
		assert.Equal(t, model.Slugify(p.Title), p.Slug, p.ID)
		assert.Positive(t, richtext.WordCount(richtext.PlainText(p.Content)), p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestPostsReturnsCopies(t *testing.T) {
	first := Posts()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"
	first[0].Content.Content[0].Type = "changed"

	second := Posts()
	assert.NotEqual(t, "changed", second[0].Title)
	assert.NotEqual(t, "changed", second[0].Tags[0])
	assert.Equal(t, richtext.TypeHeading, second[0].Content.Content[0].Type)
}

func TestCatalogCoversSeedReferences(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog.Categories, 4)

	for _, p := range Posts() {
		require.NotNil(t, p.CategoryID, p.ID)
		assert.NotNil(t, catalog.CategoryByID(*p.CategoryID), p.ID)
		assert.NotNil(t, catalog.AuthorByID(p.AuthorID), p.ID)
	}
}

func TestSeedContentRendersHTML(t *testing.T) {
	for _, p := range Posts() {
		out, err := richtext.RenderHTML(p.Content)
		require.NoError(t, err, p.ID)
		assert.NotEmpty(t, out, p.ID)
	}
}

func TestParseRejectsBadTimestamps(t *testing.T) {
	_, _, err := parse([]byte("posts:\n  - id: x\n    createdAt: yesterday\n"))
	assert.Error(t, err)
}
