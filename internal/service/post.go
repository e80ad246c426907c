package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/BloggingApp/blog-store/internal/repository"
	"github.com/BloggingApp/blog-store/internal/seed"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MAX_WRITE_ATTEMPTS = 5

type postService struct {
	logger  *zap.Logger
	repo    *repository.Repository
	catalog model.Catalog

	// serializes read-modify-write cycles of this process; other processes
	// are caught by the compare-and-swap.
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

func newPostService(logger *zap.Logger, repo *repository.Repository, catalog model.Catalog) *postService {
	return &postService{
		logger:  logger,
		repo:    repo,
		catalog: catalog,
		now: func() time.Time {
			return time.Now().UTC()
		},
		newID: newPostID,
	}
}

func newPostID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// snapshot is one read of the backing key. raw is nil when the key does
// not exist yet.
type snapshot struct {
	raw     []byte
	env     envelope
	missing bool
}

func seedEnvelope() envelope {
	return envelope{Version: STORAGE_VERSION, Posts: seed.Posts()}
}

// load reads and decodes the collection. Unparsable data yields the seed
// set; only storage read failures are returned as errors.
func (s *postService) load(ctx context.Context) (snapshot, error) {
	raw, err := s.repo.Storage.Get(ctx, s.repo.Key)
	if errors.Is(err, repository.ErrNotFound) {
		return snapshot{env: seedEnvelope(), missing: true}, nil
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to read posts(%s): %s", s.repo.Key, err.Error())
		return snapshot{}, err
	}

	env, err := decodeCollection(raw, s.catalog)
	if err != nil {
		s.logger.Sugar().Errorf("failed to parse posts(%s), falling back to seed: %s", s.repo.Key, err.Error())
		return snapshot{raw: raw, env: seedEnvelope()}, nil
	}

	return snapshot{raw: raw, env: env}, nil
}

func (s *postService) posts(ctx context.Context) []model.Post {
	if !s.repo.Available() {
		return seed.Posts()
	}

	snap, err := s.load(ctx)
	if err != nil {
		return seed.Posts()
	}

	if snap.missing {
		s.persistSeed(ctx)
	}

	return snap.env.Posts
}

// persistSeed writes the seed set when the key is still absent.
func (s *postService) persistSeed(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encodeCollection(envelope{Revision: 1, Posts: seed.Posts()})
	if err != nil {
		s.logger.Sugar().Errorf("failed to encode seed posts: %s", err.Error())
		return
	}

	if _, err := s.repo.Storage.CompareAndSwap(ctx, s.repo.Key, nil, data); err != nil {
		s.logger.Sugar().Errorf("failed to write seed posts(%s): %s", s.repo.Key, err.Error())
	}
}

// mutate runs a read-modify-write cycle. fn returns the new collection and
// whether anything changed; it may run more than once when another writer
// gets in between.
func (s *postService) mutate(ctx context.Context, fn func(posts []model.Post) ([]model.Post, bool)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.Available() {
		_, changed := fn(seed.Posts())
		return changed, nil
	}

	for attempt := 1; attempt <= MAX_WRITE_ATTEMPTS; attempt++ {
		snap, err := s.load(ctx)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrPersist, err)
		}

		posts, changed := fn(snap.env.Posts)
		if !changed {
			return false, nil
		}

		data, err := encodeCollection(envelope{Revision: snap.env.Revision + 1, Posts: posts})
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrPersist, err)
		}

		swapped, err := s.repo.Storage.CompareAndSwap(ctx, s.repo.Key, snap.raw, data)
		if err != nil {
			s.logger.Sugar().Errorf("failed to write posts(%s): %s", s.repo.Key, err.Error())
			return false, fmt.Errorf("%w: %w", ErrPersist, err)
		}
		if swapped {
			return true, nil
		}

		s.logger.Sugar().Warnf("posts(%s) changed while writing, attempt %d of %d", s.repo.Key, attempt, MAX_WRITE_ATTEMPTS)
	}

	return false, ErrConflict
}

func (s *postService) GetPosts(ctx context.Context) []model.Post {
	return s.posts(ctx)
}

func (s *postService) GetPublishedPosts(ctx context.Context) []model.Post {
	published := []model.Post{}
	for _, p := range s.posts(ctx) {
		if p.IsPublished() {
			published = append(published, p)
		}
	}
	return published
}

func (s *postService) GetPostByID(ctx context.Context, id string) *model.Post {
	for _, p := range s.posts(ctx) {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

func (s *postService) GetPostBySlug(ctx context.Context, slug string) *model.Post {
	for _, p := range s.posts(ctx) {
		if p.Slug == slug {
			return &p
		}
	}
	return nil
}

func (s *postService) GetPostsByCategory(ctx context.Context, categoryID string) []model.Post {
	posts := []model.Post{}
	for _, p := range s.posts(ctx) {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			posts = append(posts, p)
		}
	}
	return posts
}

func (s *postService) CreatePost(ctx context.Context, attrs model.PostAttrs) (*model.Post, error) {
	post := model.NewPost(s.newID(), attrs, s.now())

	if _, err := s.mutate(ctx, func(posts []model.Post) ([]model.Post, bool) {
		return append([]model.Post{post.Clone()}, posts...), true
	}); err != nil {
		s.logger.Sugar().Errorf("failed to create post(%s): %s", post.ID, err.Error())
		return nil, err
	}

	return &post, nil
}

func (s *postService) UpdatePost(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error) {
	var updated model.Post

	changed, err := s.mutate(ctx, func(posts []model.Post) ([]model.Post, bool) {
		for i := range posts {
			if posts[i].ID != id {
				continue
			}

			now := s.now()
			if now.Before(posts[i].UpdatedAt) {
				now = posts[i].UpdatedAt
			}

			next := update.Apply(posts[i])
			next.UpdatedAt = now
			next.Normalize()

			posts[i] = next
			updated = next.Clone()
			return posts, true
		}
		return posts, false
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id, err.Error())
		return nil, err
	}
	if !changed {
		return nil, nil
	}

	return &updated, nil
}

func (s *postService) DeletePost(ctx context.Context, id string) (bool, error) {
	deleted, err := s.mutate(ctx, func(posts []model.Post) ([]model.Post, bool) {
		for i := range posts {
			if posts[i].ID == id {
				return append(posts[:i], posts[i+1:]...), true
			}
		}
		return posts, false
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id, err.Error())
		return false, err
	}

	return deleted, nil
}

// Reset overwrites the collection with the seed set, discarding whatever
// was stored.
func (s *postService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.Available() {
		return nil
	}

	data, err := encodeCollection(envelope{Revision: 1, Posts: seed.Posts()})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	if err := s.repo.Storage.Set(ctx, s.repo.Key, data); err != nil {
		s.logger.Sugar().Errorf("failed to reset posts(%s): %s", s.repo.Key, err.Error())
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	s.logger.Sugar().Infof("posts(%s) reset to %d seed posts", s.repo.Key, len(seed.Posts()))

	return nil
}
