package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var ErrActivityNotFound = repository.ErrActivityNotFound

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
}

type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{
		repo: repo,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return activity, nil
}
