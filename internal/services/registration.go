package services

import (
	"context"

	"github.com/tuyoleni/nust-competion-api/types"
)

// RegistrationRepository defines persistence operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration types.Registration) (types.Registration, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

// RegistrationService encapsulates registration use-cases.
type RegistrationService struct {
	repo RegistrationRepository
}

func NewRegistrationService(repo RegistrationRepository) *RegistrationService {
	return &RegistrationService{repo: repo}
}

func (s *RegistrationService) Create(ctx context.Context, registration types.Registration) (types.Registration, error) {
	return s.repo.Create(ctx, registration)
}

func (s *RegistrationService) UpdateStatus(ctx context.Context, id int, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *RegistrationService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
