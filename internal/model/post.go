package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/BloggingApp/blog-store/internal/richtext"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// Post is the canonical, persisted blog post record.
type Post struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Slug           string        `json:"slug"`
	Excerpt        string        `json:"excerpt,omitempty"`
	Content        richtext.Node `json:"content"`
	CategoryID     *string       `json:"categoryId"`
	AuthorID       string        `json:"authorId"`
	Status         Status        `json:"status"`
	Featured       bool          `json:"featured"`
	Pinned         bool          `json:"pinned"`
	AllowComments  bool          `json:"allowComments"`
	Priority       int           `json:"priority"`
	CoverImage     string        `json:"coverImage,omitempty"`
	Tags           []string      `json:"tags,omitempty"`
	PublishedAt    *time.Time    `json:"publishedAt"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Views          int64         `json:"views"`
	LikesCount     int64         `json:"likesCount"`
	CommentsCount  int64         `json:"commentsCount"`
	BookmarksCount int64         `json:"bookmarksCount"`
}

// PostAttrs holds everything a caller supplies to create a post. Published
// is the dashboard's legacy flag and only matters when Status is empty.
type PostAttrs struct {
	Title          string
	Slug           string
	Excerpt        string
	Content        richtext.Node
	CategoryID     *string
	AuthorID       string
	Status         Status
	Published      bool
	Featured       bool
	Pinned         bool
	AllowComments  bool
	Priority       int
	CoverImage     string
	Tags           []string
	PublishedAt    *time.Time
	Views          int64
	LikesCount     int64
	CommentsCount  int64
	BookmarksCount int64
}

// PostUpdate is a partial update: nil fields are left untouched. ID and
// CreatedAt are accepted so callers can send whole records back, but they
// are never applied. An empty CategoryID clears the category.
type PostUpdate struct {
	ID             *string
	CreatedAt      *time.Time
	Title          *string
	Slug           *string
	Excerpt        *string
	Content        *richtext.Node
	CategoryID     *string
	AuthorID       *string
	Status         *Status
	Published      *bool
	Featured       *bool
	Pinned         *bool
	AllowComments  *bool
	Priority       *int
	CoverImage     *string
	Tags           *[]string
	PublishedAt    *time.Time
	Views          *int64
	LikesCount     *int64
	CommentsCount  *int64
	BookmarksCount *int64
}

func (p Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// NewPost builds a post from attrs with the given id, stamping both
// timestamps with now.
func NewPost(id string, attrs PostAttrs, now time.Time) Post {
	post := Post{
		ID:             id,
		Title:          attrs.Title,
		Slug:           attrs.Slug,
		Excerpt:        attrs.Excerpt,
		Content:        richtext.Normalize(attrs.Content),
		CategoryID:     cloneString(attrs.CategoryID),
		AuthorID:       attrs.AuthorID,
		Status:         attrs.Status,
		Featured:       attrs.Featured,
		Pinned:         attrs.Pinned,
		AllowComments:  attrs.AllowComments,
		Priority:       attrs.Priority,
		CoverImage:     attrs.CoverImage,
		Tags:           append([]string(nil), attrs.Tags...),
		PublishedAt:    cloneTime(attrs.PublishedAt),
		CreatedAt:      now,
		UpdatedAt:      now,
		Views:          attrs.Views,
		LikesCount:     attrs.LikesCount,
		CommentsCount:  attrs.CommentsCount,
		BookmarksCount: attrs.BookmarksCount,
	}

	if post.Status == "" && attrs.Published {
		post.Status = StatusPublished
	}

	if strings.TrimSpace(post.Slug) == "" {
		post.Slug = Slugify(post.Title)
	}

	post.Normalize()

	return post
}

// Apply merges u onto p and returns the result. ID, CreatedAt and UpdatedAt
// are never taken from the update.
func (u PostUpdate) Apply(p Post) Post {
	out := p.Clone()

	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Slug != nil {
		out.Slug = *u.Slug
	}
	if u.Excerpt != nil {
		out.Excerpt = *u.Excerpt
	}
	if u.Content != nil {
		out.Content = richtext.Normalize(*u.Content)
	}
	if u.CategoryID != nil {
		if *u.CategoryID == "" {
			out.CategoryID = nil
		} else {
			out.CategoryID = cloneString(u.CategoryID)
		}
	}
	if u.AuthorID != nil {
		out.AuthorID = *u.AuthorID
	}
	if u.Status != nil {
		out.Status = *u.Status
	} else if u.Published != nil {
		if *u.Published {
			out.Status = StatusPublished
		} else if out.Status == StatusPublished {
			out.Status = StatusDraft
		}
	}
	if u.Featured != nil {
		out.Featured = *u.Featured
	}
	if u.Pinned != nil {
		out.Pinned = *u.Pinned
	}
	if u.AllowComments != nil {
		out.AllowComments = *u.AllowComments
	}
	if u.Priority != nil {
		out.Priority = *u.Priority
	}
	if u.CoverImage != nil {
		out.CoverImage = *u.CoverImage
	}
	if u.Tags != nil {
		out.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.PublishedAt != nil {
		out.PublishedAt = cloneTime(u.PublishedAt)
	}
	if u.Views != nil {
		out.Views = *u.Views
	}
	if u.LikesCount != nil {
		out.LikesCount = *u.LikesCount
	}
	if u.CommentsCount != nil {
		out.CommentsCount = *u.CommentsCount
	}
	if u.BookmarksCount != nil {
		out.BookmarksCount = *u.BookmarksCount
	}

	return out
}

// Normalize enforces the record invariants: a document is always present,
// counters are non-negative, times are UTC, createdAt <= updatedAt and a
// published post has a publication time. A missing publication time is
// taken from updatedAt so that normalizing a stored record is stable.
func (p *Post) Normalize() {
	if p.Content.IsZero() {
		p.Content = richtext.EmptyDoc()
	}

	if p.Status == "" {
		p.Status = StatusDraft
	}

	if len(p.Tags) == 0 {
		p.Tags = nil
	}

	p.Views = nonNegative(p.Views)
	p.LikesCount = nonNegative(p.LikesCount)
	p.CommentsCount = nonNegative(p.CommentsCount)
	p.BookmarksCount = nonNegative(p.BookmarksCount)

	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	if p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}

	if p.PublishedAt != nil {
		t := p.PublishedAt.UTC()
		p.PublishedAt = &t
	} else if p.Status == StatusPublished {
		t := p.UpdatedAt
		p.PublishedAt = &t
	}
}

// Clone returns a copy sharing no memory with p.
func (p Post) Clone() Post {
	out := p
	out.Content = p.Content.Clone()
	out.CategoryID = cloneString(p.CategoryID)
	out.PublishedAt = cloneTime(p.PublishedAt)
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// Slugify turns a title into a URL-safe slug, folding accents:
// "Introdução ao Go!" becomes "introducao-ao-go".
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
