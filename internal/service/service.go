package service

import (
	"context"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/repository"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_post.go -package=mocks github.com/BloggingApp/blog-store/internal/service Post

const DEFAULT_RELATED_LIMIT = 3

// Post owns the blog post collection. Lookups never fail: they degrade to
// nil or the seed set. Mutations only return an error when the collection
// could not be written.
type Post interface {
	GetPosts(ctx context.Context) []model.Post
	GetPublishedPosts(ctx context.Context) []model.Post
	GetPostByID(ctx context.Context, id string) *model.Post
	GetPostBySlug(ctx context.Context, slug string) *model.Post
	GetPostsByCategory(ctx context.Context, categoryID string) []model.Post
	RelatedPosts(ctx context.Context, slug string, limit int) []model.Post
	CreatePost(ctx context.Context, attrs model.PostAttrs) (*model.Post, error)
	UpdatePost(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)
	Reset(ctx context.Context) error
}

type Catalog interface {
	GetCatalog() model.Catalog
	GetCategories() []model.Category
	GetCategoryByID(id string) *model.Category
}

type Service struct {
	Post
	Catalog
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	catalog := NewCatalogService()

	return &Service{
		Post:    newPostService(logger, repo, catalog.GetCatalog()),
		Catalog: catalog,
	}
}
