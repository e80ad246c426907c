package model

import (
	"fmt"

	"github.com/BloggingApp/blog-store/internal/richtext"
)

const (
	displayDateLayout     = "2006-01-02"
	descriptionMaxRunes   = 160
	minDisplayReadingTime = 1
)

// PostDisplay carries the denormalized fields the blog pages render. It is
// never stored; Display derives it from the canonical record.
type PostDisplay struct {
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Author      string   `json:"author"`
	Published   bool     `json:"published"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ReadingTime string   `json:"readingTime"`
}

func Display(p Post, catalog Catalog) PostDisplay {
	display := PostDisplay{
		Image:       p.CoverImage,
		Author:      p.AuthorID,
		Published:   p.IsPublished(),
		Description: p.Excerpt,
		Tags:        append([]string{}, p.Tags...),
	}

	date := p.CreatedAt
	if p.PublishedAt != nil {
		date = *p.PublishedAt
	}
	if !date.IsZero() {
		display.Date = date.UTC().Format(displayDateLayout)
	}

	if p.CategoryID != nil {
		if category := catalog.CategoryByID(*p.CategoryID); category != nil {
			display.Category = category.Name
		}
	}

	if author := catalog.AuthorByID(p.AuthorID); author != nil {
		display.Author = author.Name
	}

	if display.Description == "" {
		display.Description = richtext.Excerpt(p.Content, descriptionMaxRunes)
	}

	minutes := richtext.ReadingTime(p.Content, richtext.DefaultWordsPerMinute)
	if minutes < minDisplayReadingTime {
		minutes = minDisplayReadingTime
	}
	display.ReadingTime = fmt.Sprintf("%d min", minutes)

	return display
}
