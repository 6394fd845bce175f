package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
	ErrNotASeller   = errors.New("user is not a seller")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// DeleteSeller removes a seller account. Products created by the seller are
// left in place; they keep referencing the removed owner id.
func (s *UserService) DeleteSeller(ctx context.Context, id uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if user.Role != domain.RoleSeller {
		return ErrNotASeller
	}

	return s.repo.Delete(ctx, id)
}
