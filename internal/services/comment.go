package services

import (
	"context"

	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/types"
)

// CommentRepository defines persistence operations for blog comments.
type CommentRepository interface {
	Create(ctx context.Context, comment types.Comment) (types.Comment, error)
	ListByBlog(ctx context.Context, blogID int) ([]types.Comment, error)
	Get(ctx context.Context, id int) (types.Comment, error)
	Patch(ctx context.Context, id int, patch store.Patch) error
	Delete(ctx context.Context, id int) error
}

// CommentService encapsulates comment use-cases.
type CommentService struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) Create(ctx context.Context, comment types.Comment) (types.Comment, error) {
	return s.repo.Create(ctx, comment)
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID int) ([]types.Comment, error) {
	return s.repo.ListByBlog(ctx, blogID)
}

func (s *CommentService) Get(ctx context.Context, id int) (types.Comment, error) {
	return s.repo.Get(ctx, id)
}

func (s *CommentService) Patch(ctx context.Context, id int, patch store.Patch) error {
	return s.repo.Patch(ctx, id, patch)
}

func (s *CommentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
