package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/richtext"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedFile []byte

type seedPost struct {
	ID             string        `yaml:"id"`
	Title          string        `yaml:"title"`
	Slug           string        `yaml:"slug"`
	Excerpt        string        `yaml:"excerpt"`
	Content        richtext.Node `yaml:"content"`
	CategoryID     string        `yaml:"categoryId"`
	AuthorID       string        `yaml:"authorId"`
	Status         model.Status  `yaml:"status"`
	Featured       bool          `yaml:"featured"`
	Pinned         bool          `yaml:"pinned"`
	AllowComments  bool          `yaml:"allowComments"`
	Priority       int           `yaml:"priority"`
	CoverImage     string        `yaml:"coverImage"`
	Tags           []string      `yaml:"tags"`
	PublishedAt    string        `yaml:"publishedAt"`
	CreatedAt      string        `yaml:"createdAt"`
	UpdatedAt      string        `yaml:"updatedAt"`
	Views          int64         `yaml:"views"`
	LikesCount     int64         `yaml:"likesCount"`
	CommentsCount  int64         `yaml:"commentsCount"`
	BookmarksCount int64         `yaml:"bookmarksCount"`
}

type seedFileLayout struct {
	Categories []model.Category `yaml:"categories"`
	Authors    []model.Author   `yaml:"authors"`
	Posts      []seedPost       `yaml:"posts"`
}

var (
	posts   []model.Post
	catalog model.Catalog
)

func init() {
	var err error
	posts, catalog, err = parse(seedFile)
	if err != nil {
		panic(fmt.Sprintf("seed: %s", err.Error()))
	}
}

// Posts returns a fresh copy of the initial post set, in storage order.
func Posts() []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}

// Catalog returns a copy of the category and author catalog.
func Catalog() model.Catalog {
	return model.Catalog{
		Categories: append([]model.Category(nil), catalog.Categories...),
		Authors:    append([]model.Author(nil), catalog.Authors...),
	}
}

func parse(data []byte) ([]model.Post, model.Catalog, error) {
	var layout seedFileLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, model.Catalog{}, err
	}

	out := make([]model.Post, 0, len(layout.Posts))
	for _, sp := range layout.Posts {
		post, err := sp.toPost()
		if err != nil {
			return nil, model.Catalog{}, fmt.Errorf("post %s: %w", sp.ID, err)
		}
		out = append(out, post)
	}

	return out, model.Catalog{Categories: layout.Categories, Authors: layout.Authors}, nil
}

func (sp seedPost) toPost() (model.Post, error) {
	createdAt, err := time.Parse(time.RFC3339, sp.CreatedAt)
	if err != nil {
		return model.Post{}, err
	}
	updatedAt, err := time.Parse(time.RFC3339, sp.UpdatedAt)
	if err != nil {
		return model.Post{}, err
	}

	var publishedAt *time.Time
	if sp.PublishedAt != "" {
		t, err := time.Parse(time.RFC3339, sp.PublishedAt)
		if err != nil {
			return model.Post{}, err
		}
		publishedAt = &t
	}

	// attrs must decode the same way they do when read back from storage
	doc := richtext.Normalize(sp.Content)

	var categoryID *string
	if sp.CategoryID != "" {
		id := sp.CategoryID
		categoryID = &id
	}

	post := model.Post{
		ID:             sp.ID,
		Title:          sp.Title,
		Slug:           sp.Slug,
		Excerpt:        sp.Excerpt,
		Content:        doc,
		CategoryID:     categoryID,
		AuthorID:       sp.AuthorID,
		Status:         sp.Status,
		Featured:       sp.Featured,
		Pinned:         sp.Pinned,
		AllowComments:  sp.AllowComments,
		Priority:       sp.Priority,
		CoverImage:     sp.CoverImage,
		Tags:           sp.Tags,
		PublishedAt:    publishedAt,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		Views:          sp.Views,
		LikesCount:     sp.LikesCount,
		CommentsCount:  sp.CommentsCount,
		BookmarksCount: sp.BookmarksCount,
	}
	post.Normalize()

	return post, nil
}
