package services

import (
	"context"

	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/types"
)

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	Create(ctx context.Context, blog types.Blog) (types.Blog, error)
	List(ctx context.Context) ([]types.Blog, error)
	Get(ctx context.Context, id int) (types.Blog, error)
	Patch(ctx context.Context, id int, patch store.Patch) error
	Delete(ctx context.Context, id int) error
}

// BlogService encapsulates blog use-cases.
type BlogService struct {
	repo     BlogRepository
	comments CommentRepository
}

func NewBlogService(repo BlogRepository, comments CommentRepository) *BlogService {
	return &BlogService{repo: repo, comments: comments}
}

func (s *BlogService) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	return s.repo.Create(ctx, blog)
}

func (s *BlogService) List(ctx context.Context) ([]types.Blog, error) {
	return s.repo.List(ctx)
}

// GetWithComments fetches a blog and its comments. The two reads are not
// transactional; under concurrent mutation they may observe different points
// in time.
func (s *BlogService) GetWithComments(ctx context.Context, id int) (types.Blog, []types.Comment, error) {
	blog, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.Blog{}, nil, err
	}
	comments, err := s.comments.ListByBlog(ctx, id)
	if err != nil {
		return types.Blog{}, nil, err
	}
	return blog, comments, nil
}

func (s *BlogService) Patch(ctx context.Context, id int, patch store.Patch) error {
	return s.repo.Patch(ctx, id, patch)
}

func (s *BlogService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
