package services

import (
	"context"

	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/types"
)

// MessageRepository defines persistence operations for broadcast messages.
type MessageRepository interface {
	Create(ctx context.Context, message types.Message) (types.Message, error)
	List(ctx context.Context) ([]types.Message, error)
	Get(ctx context.Context, id int) (types.Message, error)
	Patch(ctx context.Context, id int, patch store.Patch) error
	Delete(ctx context.Context, id int) error
}

// MessageService encapsulates message use-cases.
type MessageService struct {
	repo MessageRepository
}

func NewMessageService(repo MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) Create(ctx context.Context, message types.Message) (types.Message, error) {
	return s.repo.Create(ctx, message)
}

func (s *MessageService) List(ctx context.Context) ([]types.Message, error) {
	return s.repo.List(ctx)
}

func (s *MessageService) Get(ctx context.Context, id int) (types.Message, error) {
	return s.repo.Get(ctx, id)
}

func (s *MessageService) Patch(ctx context.Context, id int, patch store.Patch) error {
	return s.repo.Patch(ctx, id, patch)
}

func (s *MessageService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
