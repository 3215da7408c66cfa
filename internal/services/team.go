package services

import (
	"context"

	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/types"
)

// TeamRepository defines persistence operations for teams.
type TeamRepository interface {
	Create(ctx context.Context, team types.Team) (types.Team, error)
	Find(ctx context.Context, teamID *int, schoolName string) ([]types.Team, error)
	Patch(ctx context.Context, id int, patch store.Patch) error
}

// TeamService encapsulates team use-cases.
type TeamService struct {
	repo TeamRepository
}

func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) Create(ctx context.Context, team types.Team) (types.Team, error) {
	return s.repo.Create(ctx, team)
}

func (s *TeamService) Find(ctx context.Context, teamID *int, schoolName string) ([]types.Team, error) {
	return s.repo.Find(ctx, teamID, schoolName)
}

func (s *TeamService) Patch(ctx context.Context, id int, patch store.Patch) error {
	return s.repo.Patch(ctx, id, patch)
}
