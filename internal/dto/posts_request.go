package dto

import (
	"time"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/richtext"
)

type CreatePostRequest struct {
	Title          string         `json:"title" binding:"required,min=2"`
	Slug           string         `json:"slug"`
	Excerpt        string         `json:"excerpt"`
	Content        *richtext.Node `json:"content"`
	CategoryID     *string        `json:"categoryId"`
	AuthorID       string         `json:"authorId"`
	Status         string         `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Published      bool           `json:"published"`
	Featured       bool           `json:"featured"`
	Pinned         bool           `json:"pinned"`
	AllowComments  bool           `json:"allowComments"`
	Priority       int            `json:"priority"`
	CoverImage     string         `json:"coverImage"`
	Tags           []string       `json:"tags"`
	PublishedAt    *time.Time     `json:"publishedAt"`
	Views          int64          `json:"views" binding:"min=0"`
	LikesCount     int64          `json:"likesCount" binding:"min=0"`
	CommentsCount  int64          `json:"commentsCount" binding:"min=0"`
	BookmarksCount int64          `json:"bookmarksCount" binding:"min=0"`
}

func (r CreatePostRequest) ToAttrs() model.PostAttrs {
	attrs := model.PostAttrs{
		Title:          r.Title,
		Slug:           r.Slug,
		Excerpt:        r.Excerpt,
		CategoryID:     r.CategoryID,
		AuthorID:       r.AuthorID,
		Status:         model.Status(r.Status),
		Published:      r.Published,
		Featured:       r.Featured,
		Pinned:         r.Pinned,
		AllowComments:  r.AllowComments,
		Priority:       r.Priority,
		CoverImage:     r.CoverImage,
		Tags:           r.Tags,
		PublishedAt:    r.PublishedAt,
		Views:          r.Views,
		LikesCount:     r.LikesCount,
		CommentsCount:  r.CommentsCount,
		BookmarksCount: r.BookmarksCount,
	}
	if r.Content != nil {
		attrs.Content = *r.Content
	}
	if attrs.CategoryID != nil && *attrs.CategoryID == "" {
		attrs.CategoryID = nil
	}

	return attrs
}

// UpdatePostRequest is a partial update: absent fields are left as they
// are. id and createdAt are accepted and ignored.
type UpdatePostRequest struct {
	ID             *string        `json:"id"`
	CreatedAt      *time.Time     `json:"createdAt"`
	Title          *string        `json:"title" binding:"omitempty,min=2"`
	Slug           *string        `json:"slug"`
	Excerpt        *string        `json:"excerpt"`
	Content        *richtext.Node `json:"content"`
	CategoryID     *string        `json:"categoryId"`
	AuthorID       *string        `json:"authorId"`
	Status         *string        `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Published      *bool          `json:"published"`
	Featured       *bool          `json:"featured"`
	Pinned         *bool          `json:"pinned"`
	AllowComments  *bool          `json:"allowComments"`
	Priority       *int           `json:"priority"`
	CoverImage     *string        `json:"coverImage"`
	Tags           *[]string      `json:"tags"`
	PublishedAt    *time.Time     `json:"publishedAt"`
	Views          *int64         `json:"views" binding:"omitempty,min=0"`
	LikesCount     *int64         `json:"likesCount" binding:"omitempty,min=0"`
	CommentsCount  *int64         `json:"commentsCount" binding:"omitempty,min=0"`
	BookmarksCount *int64         `json:"bookmarksCount" binding:"omitempty,min=0"`
}

func (r UpdatePostRequest) ToUpdate() model.PostUpdate {
	update := model.PostUpdate{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		Title:          r.Title,
		Slug:           r.Slug,
		Excerpt:        r.Excerpt,
		Content:        r.Content,
		CategoryID:     r.CategoryID,
		AuthorID:       r.AuthorID,
		Published:      r.Published,
		Featured:       r.Featured,
		Pinned:         r.Pinned,
		AllowComments:  r.AllowComments,
		Priority:       r.Priority,
		CoverImage:     r.CoverImage,
		Tags:           r.Tags,
		PublishedAt:    r.PublishedAt,
		Views:          r.Views,
		LikesCount:     r.LikesCount,
		CommentsCount:  r.CommentsCount,
		BookmarksCount: r.BookmarksCount,
	}
	if r.Status != nil {
		status := model.Status(*r.Status)
		update.Status = &status
	}

	return update
}
