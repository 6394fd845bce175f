package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var ErrMuseumNotFound = repository.ErrMuseumNotFound

type MuseumRepository interface {
	Create(ctx context.Context, museum domain.Museum) (domain.Museum, error)
	FindAll(ctx context.Context) ([]domain.Museum, error)
	FindByID(ctx context.Context, id uint) (domain.Museum, error)
	Update(ctx context.Context, museum domain.Museum) (domain.Museum, error)
	Delete(ctx context.Context, id uint) error
}

type MuseumService struct {
	repo MuseumRepository
}

func NewMuseumService(repo MuseumRepository) *MuseumService {
	return &MuseumService{
		repo: repo,
	}
}

// ListMuseums fetches the whole collection and applies the catalog criteria
// in memory. Museums are searched on name, description and location; the
// price filter applies to the foreigner ticket price.
func (s *MuseumService) ListMuseums(ctx context.Context, criteria catalog.Criteria) ([]domain.Museum, error) {
	museums, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	items := make([]catalog.Item, len(museums))
	for i, m := range museums {
		items[i] = catalog.Item{
			Key:    i,
			Name:   m.Name,
			Fields: []string{m.Name, m.Description, m.Location},
			Price:  m.TicketPrices.Foreigner,
			Rating: m.Rating,
		}
	}

	filtered := catalog.Apply(items, criteria)

	result := make([]domain.Museum, len(filtered))
	for i, it := range filtered {
		result[i] = museums[it.Key]
	}

	return result, nil
}

func (s *MuseumService) CreateMuseum(ctx context.Context, museum domain.Museum) (domain.Museum, error) {
	created, err := s.repo.Create(ctx, museum)
	if err != nil {
		return domain.Museum{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MuseumService) GetMuseum(ctx context.Context, id uint) (domain.Museum, error) {
	museum, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Museum{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return museum, nil
}

func (s *MuseumService) UpdateMuseum(ctx context.Context, museum domain.Museum) (domain.Museum, error) {
	updated, err := s.repo.Update(ctx, museum)
	if err != nil {
		return domain.Museum{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MuseumService) DeleteMuseum(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
