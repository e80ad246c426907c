package service

import (
	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/seed"
)

type catalogService struct {
	catalog model.Catalog
}

// NewCatalogService serves the fixed category and author catalog.
func NewCatalogService() Catalog {
	return &catalogService{
		catalog: seed.Catalog(),
	}
}

func (s *catalogService) GetCatalog() model.Catalog {
	return model.Catalog{
		Categories: append([]model.Category(nil), s.catalog.Categories...),
		Authors:    append([]model.Author(nil), s.catalog.Authors...),
	}
}

func (s *catalogService) GetCategories() []model.Category {
	return append([]model.Category{}, s.catalog.Categories...)
}

func (s *catalogService) GetCategoryByID(id string) *model.Category {
	category := s.catalog.CategoryByID(id)
	if category == nil {
		return nil
	}

	out := *category
	return &out
}
