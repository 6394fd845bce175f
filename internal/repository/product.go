package repository

import (
	"context"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
)

var (
	ErrProductNotFound   = dao.ErrProductNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	FindAll(ctx context.Context) ([]dao.Product, error)
	FindVisible(ctx context.Context) ([]dao.Product, error)
	FindByID(ctx context.Context, id uint) (dao.Product, error)
	Update(ctx context.Context, product dao.Product) (dao.Product, error)
	ToggleArchive(ctx context.Context, id uint) (dao.Product, error)
}

type ProductRepository struct {
	dao       ProductDAO
	reviewDAO ReviewDAO
}

func NewProductRepository(dao ProductDAO, reviewDAO ReviewDAO) *ProductRepository {
	return &ProductRepository{
		dao:       dao,
		reviewDAO: reviewDAO,
	}
}

func (r *ProductRepository) domainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Quantity:      p.Quantity,
		Image:         p.Image,
		Description:   p.Description,
		Seller:        p.Seller,
		OwnerID:       p.OwnerID,
		Archived:      p.Archived,
		Sales:         p.Sales,
		AverageRating: p.AverageRating,
		TotalRatings:  p.TotalRatings,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *ProductRepository) daoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Quantity:      p.Quantity,
		Image:         p.Image,
		Description:   p.Description,
		Seller:        p.Seller,
		OwnerID:       p.OwnerID,
		Archived:      p.Archived,
		Sales:         p.Sales,
		AverageRating: p.AverageRating,
		TotalRatings:  p.TotalRatings,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *ProductRepository) daosToDomain(products []dao.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = r.daoToDomain(p)
	}

	return out
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(product))
	if err != nil {
		return domain.Product{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return r.daosToDomain(found), nil
}

func (r *ProductRepository) FindVisible(ctx context.Context) ([]domain.Product, error) {
	found, err := r.dao.FindVisible(ctx)
	if err != nil {
		return nil, err
	}

	return r.daosToDomain(found), nil
}

// FindByID returns the product with its reviews attached.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	product := r.daoToDomain(found)

	reviews, err := r.reviewDAO.FindByTarget(ctx, string(domain.ReviewTargetProduct), id)
	if err != nil {
		return domain.Product{}, err
	}
	product.Reviews = reviewDaosToDomain(reviews)

	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(product))
	if err != nil {
		return domain.Product{}, err
	}

	return r.daoToDomain(updated), nil
}

func (r *ProductRepository) ToggleArchive(ctx context.Context, id uint) (domain.Product, error) {
	toggled, err := r.dao.ToggleArchive(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	return r.daoToDomain(toggled), nil
}
