package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var ErrProductNotFound = repository.ErrProductNotFound

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindVisible(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	ToggleArchive(ctx context.Context, id uint) (domain.Product, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

func (s *ProductService) applyCriteria(products []domain.Product, criteria catalog.Criteria) []domain.Product {
	items := make([]catalog.Item, len(products))
	for i, p := range products {
		items[i] = catalog.Item{
			Key:      i,
			Name:     p.Name,
			Fields:   []string{p.Name, p.Description, p.Seller},
			Price:    p.Price,
			Quantity: p.Quantity,
			Rating:   p.AverageRating,
		}
	}

	filtered := catalog.Apply(items, criteria)

	result := make([]domain.Product, len(filtered))
	for i, it := range filtered {
		result[i] = products[it.Key]
	}

	return result
}

// ListProducts is the tourist-facing listing: archived products are excluded
// before any criteria apply.
func (s *ProductService) ListProducts(ctx context.Context, criteria catalog.Criteria) ([]domain.Product, error) {
	products, err := s.repo.FindVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindVisible -> %w", err)
	}

	return s.applyCriteria(products, criteria), nil
}

// ListAllProducts is the seller/admin listing, archived included.
func (s *ProductService) ListAllProducts(ctx context.Context, criteria catalog.Criteria) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return s.applyCriteria(products, criteria), nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ToggleArchive flips the archived flag. Carts, wishlists and history keep
// their references to the product either way.
func (s *ProductService) ToggleArchive(ctx context.Context, id uint) (domain.Product, error) {
	toggled, err := s.repo.ToggleArchive(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.ToggleArchive -> %w", err)
	}

	return toggled, nil
}
