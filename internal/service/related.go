package service

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BloggingApp/blog-store/internal/model"
)

const (
	sameCategoryScore = 3
	sharedTagScore    = 2
	sharedWordScore   = 1
	minTitleWordLen   = 4
)

type scoredPost struct {
	post  model.Post
	score int
	index int
}

// RelatedPosts ranks the other published posts by how much they have in
// common with the post behind slug.
func (s *postService) RelatedPosts(ctx context.Context, slug string, limit int) []model.Post {
	if limit <= 0 {
		limit = DEFAULT_RELATED_LIMIT
	}

	posts := s.posts(ctx)

	var current *model.Post
	for i := range posts {
		if posts[i].Slug == slug {
			current = &posts[i]
			break
		}
	}
	if current == nil {
		return []model.Post{}
	}

	tags := lowerSet(current.Tags)
	words := titleWords(current.Title)

	var candidates []scoredPost
	for i, p := range posts {
		if p.ID == current.ID || !p.IsPublished() {
			continue
		}

		score := 0
		if current.CategoryID != nil && p.CategoryID != nil && *current.CategoryID == *p.CategoryID {
			score += sameCategoryScore
		}
		for tag := range lowerSet(p.Tags) {
			if _, ok := tags[tag]; ok {
				score += sharedTagScore
			}
		}
		for word := range titleWords(p.Title) {
			if _, ok := words[word]; ok {
				score += sharedWordScore
			}
		}

		if score > 0 {
			candidates = append(candidates, scoredPost{post: p, score: score, index: i})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if newer, ok := publishedAfter(a.post, b.post); ok {
			return newer
		}
		return a.index < b.index
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	related := make([]model.Post, 0, len(candidates))
	for _, c := range candidates {
		related = append(related, c.post)
	}
	return related
}

// publishedAfter reports whether a was published after b. ok is false when
// the two cannot be told apart.
func publishedAfter(a, b model.Post) (after bool, ok bool) {
	switch {
	case a.PublishedAt == nil && b.PublishedAt == nil:
		return false, false
	case a.PublishedAt == nil:
		return false, true
	case b.PublishedAt == nil:
		return true, true
	case a.PublishedAt.Equal(*b.PublishedAt):
		return false, false
	default:
		return a.PublishedAt.After(*b.PublishedAt), true
	}
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func titleWords(title string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTitleWordLen {
			words[f] = struct{}{}
		}
	}
	return words
}
