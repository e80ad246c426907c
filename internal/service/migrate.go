package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/richtext"
)

// legacyPost is a record of the unversioned array layout. Its fields shadow
// the ones of model.Post that changed shape.
type legacyPost struct {
	model.Post
	Content     json.RawMessage `json:"content"`
	Status      string          `json:"status"`
	Published   *bool           `json:"published"`
	Date        string          `json:"date"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

var legacyDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// legacyEpoch dates legacy records that carry no date at all, so every
// read of the same collection yields the same timestamps.
var legacyEpoch = time.Unix(0, 0).UTC()

func migrateLegacy(data []byte, catalog model.Catalog) ([]model.Post, error) {
	var legacy []legacyPost
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(legacy))
	for _, lp := range legacy {
		post, err := lp.migrate(catalog)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (lp legacyPost) migrate(catalog model.Catalog) (model.Post, error) {
	post := lp.Post

	content, err := legacyContent(lp.Content)
	if err != nil {
		return model.Post{}, err
	}
	post.Content = content

	post.Status = model.Status(strings.ToUpper(strings.TrimSpace(lp.Status)))
	if post.Status == "" && lp.Published != nil && *lp.Published {
		post.Status = model.StatusPublished
	}

	if post.CoverImage == "" {
		post.CoverImage = lp.Image
	}
	if post.Excerpt == "" {
		post.Excerpt = lp.Description
	}

	if post.CategoryID == nil && lp.Category != "" {
		if category := legacyCategory(catalog, lp.Category); category != nil {
			id := category.ID
			post.CategoryID = &id
		}
	}

	if date, ok := parseLegacyDate(lp.Date); ok {
		if post.PublishedAt == nil && post.Status == model.StatusPublished {
			post.PublishedAt = &date
		}
		if post.CreatedAt.IsZero() {
			post.CreatedAt = date
		}
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = legacyEpoch
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}

	if post.Slug == "" {
		post.Slug = model.Slugify(post.Title)
	}

	post.Normalize()

	return post, nil
}

// legacyContent accepts a document tree, a plain string (one paragraph per
// line) or nothing.
func legacyContent(raw json.RawMessage) (richtext.Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return richtext.EmptyDoc(), nil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return richtext.Node{}, err
		}

		var blocks []richtext.Node
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				blocks = append(blocks, richtext.Paragraph(line))
			}
		}
		return richtext.Doc(blocks...), nil
	}

	var doc richtext.Node
	if err := json.Unmarshal(raw, &doc); err != nil {
		return richtext.Node{}, err
	}
	if doc.IsZero() {
		return richtext.EmptyDoc(), nil
	}

	return doc, nil
}

func legacyCategory(catalog model.Catalog, name string) *model.Category {
	if category := catalog.CategoryByID(name); category != nil {
		return category
	}
	if category := catalog.CategoryBySlug(model.Slugify(name)); category != nil {
		return category
	}
	for i := range catalog.Categories {
		if strings.EqualFold(catalog.Categories[i].Name, name) {
			return &catalog.Categories[i]
		}
	}
	return nil
}

func parseLegacyDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
