package service

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedAttrs(title, category string, tags []string, publishedAt time.Time) model.PostAttrs {
	attrs := randomAttrs()
	attrs.Title = title
	attrs.Slug = ""
	attrs.CategoryID = &category
	attrs.Tags = tags
	attrs.Status = model.StatusPublished
	attrs.PublishedAt = &publishedAt
	return attrs
}

func TestRelatedPosts(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, newTestStorage())
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	current, err := s.CreatePost(ctx, publishedAttrs("Testes de integração em Go", "desenvolvimento", []string{"go", "testes"}, base))
	require.NoError(t, err)

	sameEverything, err := s.CreatePost(ctx, publishedAttrs("Testes de carga", "desenvolvimento", []string{"Go", "testes"}, base))
	require.NoError(t, err)

	draftAttrs := publishedAttrs("Testes de integração", "desenvolvimento", []string{"go", "testes"}, base)
	draftAttrs.Status = model.StatusDraft
	draftAttrs.PublishedAt = nil
	_, err = s.CreatePost(ctx, draftAttrs)
	require.NoError(t, err)

	olderTag, err := s.CreatePost(ctx, publishedAttrs("Outro assunto", "design", []string{"go"}, base.Add(-time.Hour)))
	require.NoError(t, err)
	newerTag, err := s.CreatePost(ctx, publishedAttrs("Mais um assunto", "design", []string{"go"}, base.Add(time.Hour)))
	require.NoError(t, err)

	related := s.RelatedPosts(ctx, current.Slug, 10)

	// seed post "1" shares the category and the "go" tag, seed post "2" only the tag
	assert.Equal(t, []string{sameEverything.ID, "1", newerTag.ID, olderTag.ID, "2"}, postIDs(related))
	assert.Len(t, s.RelatedPosts(ctx, current.Slug, 2), 2)
	assert.Len(t, s.RelatedPosts(ctx, current.Slug, 0), DEFAULT_RELATED_LIMIT)
}

func TestRelatedPostsUnknownSlug(t *testing.T) {
	s, _ := newTestService(t, newTestStorage())

	assert.Empty(t, s.RelatedPosts(context.Background(), "missing", 3))
}

func TestTitleWords(t *testing.T) {
	words := titleWords("Go: APIs, testes e Integração!")

	assert.Contains(t, words, "apis")
	assert.Contains(t, words, "testes")
	assert.Contains(t, words, "integração")
	assert.NotContains(t, words, "go")
	assert.NotContains(t, words, "e")
}
