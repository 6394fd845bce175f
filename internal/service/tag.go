package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var (
	ErrTagNotFound    = repository.ErrTagNotFound
	ErrInvalidTagType = errors.New("invalid museum tag type")
)

type TagRepository interface {
	CreateMuseumTag(ctx context.Context, tag domain.MuseumTag) (domain.MuseumTag, error)
	FindAllMuseumTags(ctx context.Context) ([]domain.MuseumTag, error)
	DeleteMuseumTag(ctx context.Context, id uint) error
	CreatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error)
	FindAllPreferenceTags(ctx context.Context) ([]domain.PreferenceTag, error)
	UpdatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error)
	DeletePreferenceTag(ctx context.Context, id uint) error
}

type TagService struct {
	repo TagRepository
}

func NewTagService(repo TagRepository) *TagService {
	return &TagService{
		repo: repo,
	}
}

func (s *TagService) CreateMuseumTag(ctx context.Context, tag domain.MuseumTag) (domain.MuseumTag, error) {
	if !tag.Type.IsValid() {
		return domain.MuseumTag{}, ErrInvalidTagType
	}

	created, err := s.repo.CreateMuseumTag(ctx, tag)
	if err != nil {
		return domain.MuseumTag{}, fmt.Errorf("s.repo.CreateMuseumTag -> %w", err)
	}

	return created, nil
}

func (s *TagService) ListMuseumTags(ctx context.Context) ([]domain.MuseumTag, error) {
	tags, err := s.repo.FindAllMuseumTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllMuseumTags -> %w", err)
	}

	return tags, nil
}

func (s *TagService) DeleteMuseumTag(ctx context.Context, id uint) error {
	return s.repo.DeleteMuseumTag(ctx, id)
}

func (s *TagService) CreatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error) {
	created, err := s.repo.CreatePreferenceTag(ctx, tag)
	if err != nil {
		return domain.PreferenceTag{}, fmt.Errorf("s.repo.CreatePreferenceTag -> %w", err)
	}

	return created, nil
}

func (s *TagService) ListPreferenceTags(ctx context.Context) ([]domain.PreferenceTag, error) {
	tags, err := s.repo.FindAllPreferenceTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllPreferenceTags -> %w", err)
	}

	return tags, nil
}

func (s *TagService) UpdatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error) {
	updated, err := s.repo.UpdatePreferenceTag(ctx, tag)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return domain.PreferenceTag{}, ErrTagNotFound
		}

		return domain.PreferenceTag{}, fmt.Errorf("s.repo.UpdatePreferenceTag -> %w", err)
	}

	return updated, nil
}

func (s *TagService) DeletePreferenceTag(ctx context.Context, id uint) error {
	return s.repo.DeletePreferenceTag(ctx, id)
}
