package services

import (
	"context"

	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/types"
)

// CompetitionRepository defines persistence operations for competitions.
type CompetitionRepository interface {
	List(ctx context.Context) ([]types.Competition, error)
	Create(ctx context.Context, competition types.Competition) (types.Competition, error)
	Patch(ctx context.Context, id int, patch store.Patch) error
	Delete(ctx context.Context, id int) error
}

// CompetitionService encapsulates competition use-cases.
type CompetitionService struct {
	repo CompetitionRepository
}

func NewCompetitionService(repo CompetitionRepository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

func (s *CompetitionService) List(ctx context.Context) ([]types.Competition, error) {
	return s.repo.List(ctx)
}

func (s *CompetitionService) Create(ctx context.Context, competition types.Competition) (types.Competition, error) {
	return s.repo.Create(ctx, competition)
}

func (s *CompetitionService) Patch(ctx context.Context, id int, patch store.Patch) error {
	return s.repo.Patch(ctx, id, patch)
}

func (s *CompetitionService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
