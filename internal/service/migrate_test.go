package service

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/richtext"
	"github.com/BloggingApp/blog-store/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyCollection = `[
	{
		"id": "1712345678901",
		"title": "Meu primeiro post",
		"slug": "meu-primeiro-post",
		"content": "Primeira linha.\n\nSegunda linha.",
		"published": true,
		"date": "2024-04-05",
		"image": "/images/primeiro.jpg",
		"description": "Um resumo",
		"category": "Arquitetura",
		"tags": ["go"],
		"views": -4
	},
	{
		"id": "1712345600000",
		"title": "Rascunho Antigo",
		"content": {"type": "doc", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "oi"}]}]},
		"published": false,
		"createdAt": "2024-04-01T10:00:00Z",
		"updatedAt": "2024-03-01T10:00:00Z"
	},
	{
		"id": "1712345500000",
		"title": "Sem conteúdo",
		"status": "published",
		"createdAt": "2024-03-20T08:00:00Z",
		"publishedAt": "2024-03-21T08:00:00Z"
	}
]`

func TestMigrateLegacy(t *testing.T) {
	posts, err := migrateLegacy([]byte(legacyCollection), seed.Catalog())
	require.NoError(t, err)
	require.Len(t, posts, 3)

	first := posts[0]
	assert.Equal(t, model.StatusPublished, first.Status)
	assert.Equal(t, richtext.Doc(richtext.Paragraph("Primeira linha."), richtext.Paragraph("Segunda linha.")), first.Content)
	assert.Equal(t, "/images/primeiro.jpg", first.CoverImage)
	assert.Equal(t, "Um resumo", first.Excerpt)
	require.NotNil(t, first.CategoryID)
	assert.Equal(t, "arquitetura", *first.CategoryID)
	date := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, date, *first.PublishedAt)
	assert.Equal(t, date, first.CreatedAt)
	assert.Equal(t, date, first.UpdatedAt)
	assert.Equal(t, int64(0), first.Views)

	second := posts[1]
	assert.Equal(t, model.StatusDraft, second.Status)
	assert.Nil(t, second.PublishedAt)
	assert.Equal(t, "rascunho-antigo", second.Slug)
	assert.Equal(t, "oi", richtext.PlainText(second.Content))
	assert.Equal(t, second.CreatedAt, second.UpdatedAt)

	third := posts[2]
	assert.Equal(t, model.StatusPublished, third.Status)
	assert.Equal(t, richtext.EmptyDoc(), third.Content)
	assert.Equal(t, time.Date(2024, 3, 21, 8, 0, 0, 0, time.UTC), *third.PublishedAt)
}

func TestLegacyCollectionIsReadAndUpgradedOnWrite(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	require.NoError(t, storage.Storage.Set(ctx, testKey, []byte(legacyCollection)))

	s, _ := newTestService(t, storage)

	assert.Equal(t, []string{"1712345678901", "1712345600000", "1712345500000"}, postIDs(s.GetPosts(ctx)))
	assert.Equal(t, []string{"1712345678901", "1712345500000"}, postIDs(s.GetPublishedPosts(ctx)))

	deleted, err := s.DeletePost(ctx, "1712345600000")
	require.NoError(t, err)
	require.True(t, deleted)

	raw, err := storage.Storage.Get(ctx, testKey)
	require.NoError(t, err)
	env, err := decodeCollection(raw, seed.Catalog())
	require.NoError(t, err)
	assert.Equal(t, STORAGE_VERSION, env.Version)
	assert.Equal(t, int64(1), env.Revision)
	assert.Len(t, env.Posts, 2)
}

func TestUndatedLegacyPostReadsTheSameEveryTime(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	require.NoError(t, storage.Storage.Set(ctx, testKey, []byte(`[{"id":"1","title":"Sem data","published":true}]`)))

	s, c := newTestService(t, storage)

	first := s.GetPostByID(ctx, "1")
	require.NotNil(t, first)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, legacyEpoch, first.CreatedAt)
	assert.Equal(t, legacyEpoch, *first.PublishedAt)

	c.Advance(24 * time.Hour)
	assert.Equal(t, *first, *s.GetPostByID(ctx, "1"))
}

func TestStoredPublishedPostWithoutDateIsStable(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	raw := `{"version":2,"revision":3,"posts":[{"id":"1","title":"x","slug":"x","content":{"type":"doc","content":[]},` +
		`"status":"PUBLISHED","publishedAt":null,"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-02T00:00:00Z"}]}`
	require.NoError(t, storage.Storage.Set(ctx, testKey, []byte(raw)))

	s, c := newTestService(t, storage)

	first := s.GetPostByID(ctx, "1")
	require.NotNil(t, first)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *first.PublishedAt)

	c.Advance(time.Hour)
	assert.Equal(t, *first, *s.GetPostByID(ctx, "1"))
}

func TestMigrateLegacyRejectsMalformedContent(t *testing.T) {
	_, err := migrateLegacy([]byte(`[{"id":"1","title":"x","content":42}]`), model.Catalog{})
	assert.Error(t, err)
}

func TestEncodeCollectionEmpty(t *testing.T) {
	data, err := encodeCollection(envelope{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2,"revision":0,"posts":[]}`, string(data))
}
