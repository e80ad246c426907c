package model

import (
	"testing"
	"time"

	"github.com/BloggingApp/blog-store/internal/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func TestNewPost(t *testing.T) {
	post := NewPost("abc", PostAttrs{Title: "Introdução ao Go!", AuthorID: "rainer"}, fixedNow)

	assert.Equal(t, "abc", post.ID)
	assert.Equal(t, "introducao-ao-go", post.Slug)
	assert.Equal(t, richtext.EmptyDoc(), post.Content)
	assert.Equal(t, StatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, fixedNow, post.CreatedAt)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestNewPostLegacyPublishedFlag(t *testing.T) {
	post := NewPost("abc", PostAttrs{Title: "x", Published: true}, fixedNow)

	assert.Equal(t, StatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)
	assert.True(t, post.PublishedAt.Equal(fixedNow))

	draft := NewPost("def", PostAttrs{Title: "x", Status: StatusDraft, Published: true}, fixedNow)
	assert.Equal(t, StatusDraft, draft.Status)
}

func TestNewPostClampsCounters(t *testing.T) {
	post := NewPost("abc", PostAttrs{Title: "x", Views: -3, LikesCount: 2, CommentsCount: -1, BookmarksCount: -9}, fixedNow)

	assert.Equal(t, int64(0), post.Views)
	assert.Equal(t, int64(2), post.LikesCount)
	assert.Equal(t, int64(0), post.CommentsCount)
	assert.Equal(t, int64(0), post.BookmarksCount)
}

func TestApplyIgnoresIdentityFields(t *testing.T) {
	post := NewPost("abc", PostAttrs{Title: "Old"}, fixedNow)
	other := fixedNow.Add(-48 * time.Hour)

	updated := PostUpdate{
		ID:        ptr("other"),
		CreatedAt: &other,
		Title:     ptr("New"),
	}.Apply(post)

	assert.Equal(t, "abc", updated.ID)
	assert.Equal(t, fixedNow, updated.CreatedAt)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Old", post.Title)
}

func TestApplyCategory(t *testing.T) {
	post := NewPost("abc", PostAttrs{Title: "x", CategoryID: ptr("go")}, fixedNow)

	assert.Equal(t, "arch", *PostUpdate{CategoryID: ptr("arch")}.Apply(post).CategoryID)
	assert.Nil(t, PostUpdate{CategoryID: ptr("")}.Apply(post).CategoryID)
	assert.Equal(t, "go", *PostUpdate{}.Apply(post).CategoryID)
}

func TestApplyStatus(t *testing.T) {
	post := NewPost("abc", PostAttrs{Title: "x", Status: StatusPublished}, fixedNow)

	assert.Equal(t, StatusDraft, PostUpdate{Published: ptr(false)}.Apply(post).Status)
	assert.Equal(t, StatusArchived, PostUpdate{Status: ptr(StatusArchived), Published: ptr(true)}.Apply(post).Status)

	draft := NewPost("def", PostAttrs{Title: "x"}, fixedNow)
	assert.Equal(t, StatusPublished, PostUpdate{Published: ptr(true)}.Apply(draft).Status)
	assert.Equal(t, StatusDraft, PostUpdate{Published: ptr(false)}.Apply(draft).Status)
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	tags := []string{"go"}
	post := NewPost("abc", PostAttrs{Title: "x"}, fixedNow)

	updated := PostUpdate{Tags: &tags}.Apply(post)
	tags[0] = "rust"

	assert.Equal(t, []string{"go"}, updated.Tags)
}

func TestNormalizeKeepsTimestampsOrdered(t *testing.T) {
	post := Post{CreatedAt: fixedNow, UpdatedAt: fixedNow.Add(-time.Hour)}
	post.Normalize()

	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, richtext.EmptyDoc(), post.Content)
}

func TestNormalizeStampsPublishedAtFromUpdatedAt(t *testing.T) {
	updatedAt := fixedNow.Add(2 * time.Hour)
	post := Post{Status: StatusPublished, CreatedAt: fixedNow, UpdatedAt: updatedAt}

	post.Normalize()
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, updatedAt, *post.PublishedAt)

	again := post.Clone()
	again.Normalize()
	assert.Equal(t, post, again)
}

func TestNewPostContentMatchesStoredShape(t *testing.T) {
	content := richtext.Node{
		Type: richtext.TypeDoc,
		Content: []richtext.Node{
			{Type: richtext.TypeHeading, Attrs: map[string]any{"level": 2}, Content: []richtext.Node{{Type: richtext.TypeText, Text: "Título"}}},
			{Type: richtext.TypeParagraph, Content: []richtext.Node{}},
		},
	}

	post := NewPost("abc", PostAttrs{Title: "x", Content: content}, fixedNow)

	assert.Equal(t, float64(2), post.Content.Content[0].Attrs["level"])
	assert.Nil(t, post.Content.Content[1].Content)
	assert.Equal(t, 2, content.Content[0].Attrs["level"])

	updated := PostUpdate{Content: &content}.Apply(post)
	assert.Equal(t, post.Content, updated.Content)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World":                 "hello-world",
		"  Arquitetura   Limpa  ":     "arquitetura-limpa",
		"Ação & Reação: São Paulo!":   "acao-reacao-sao-paulo",
		"Go 1.22 -- novidades":        "go-1-22-novidades",
		"":                            "",
		"!!!":                         "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}
