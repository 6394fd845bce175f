package repository

import (
	"context"
	"errors"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
)

type TouristDAO interface {
	ToggleWishlist(ctx context.Context, touristID, productID uint) (bool, error)
	FindWishlist(ctx context.Context, touristID uint) ([]dao.WishlistItem, error)
	UpsertCartItem(ctx context.Context, touristID, productID uint, quantity int) (dao.CartItem, error)
	FindCart(ctx context.Context, touristID uint) ([]dao.CartItem, error)
	RecordPurchase(ctx context.Context, record dao.PurchaseRecord) (dao.PurchaseRecord, error)
	HasPurchased(ctx context.Context, touristID, productID uint) (bool, error)
	FindPurchases(ctx context.Context, touristID uint) ([]dao.PurchaseRecord, error)
}

type TouristRepository struct {
	dao        TouristDAO
	productDAO ProductDAO
}

func NewTouristRepository(dao TouristDAO, productDAO ProductDAO) *TouristRepository {
	return &TouristRepository{
		dao:        dao,
		productDAO: productDAO,
	}
}

func (r *TouristRepository) productPayload(ctx context.Context, productID uint) (domain.Product, error) {
	p, err := r.productDAO.FindByID(ctx, productID)
	if err != nil {
		// Carts, wishlists and history keep referencing products after they
		// are archived or deleted; a missing payload is not fatal.
		if errors.Is(err, dao.ErrProductNotFound) {
			return domain.Product{ID: productID}, nil
		}

		return domain.Product{}, err
	}

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
	}, nil
}

func (r *TouristRepository) ToggleWishlist(ctx context.Context, touristID, productID uint) (bool, error) {
	return r.dao.ToggleWishlist(ctx, touristID, productID)
}

func (r *TouristRepository) FindWishlist(ctx context.Context, touristID uint) ([]domain.WishlistItem, error) {
	found, err := r.dao.FindWishlist(ctx, touristID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.WishlistItem, len(found))
	for i, it := range found {
		product, err := r.productPayload(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}

		items[i] = domain.WishlistItem{
			ID:        it.ID,
			TouristID: it.TouristID,
			ProductID: it.ProductID,
			Product:   product,
			CreatedAt: it.CreatedAt,
		}
	}

	return items, nil
}

func (r *TouristRepository) AddToCart(ctx context.Context, touristID, productID uint, quantity int) (domain.CartItem, error) {
	item, err := r.dao.UpsertCartItem(ctx, touristID, productID, quantity)
	if err != nil {
		return domain.CartItem{}, err
	}

	product, err := r.productPayload(ctx, item.ProductID)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ID:        item.ID,
		TouristID: item.TouristID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Product:   product,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, nil
}

func (r *TouristRepository) FindCart(ctx context.Context, touristID uint) ([]domain.CartItem, error) {
	found, err := r.dao.FindCart(ctx, touristID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, len(found))
	for i, it := range found {
		product, err := r.productPayload(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}

		items[i] = domain.CartItem{
			ID:        it.ID,
			TouristID: it.TouristID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Product:   product,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
		}
	}

	return items, nil
}

func (r *TouristRepository) RecordPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	created, err := r.dao.RecordPurchase(ctx, dao.PurchaseRecord{
		TouristID: record.TouristID,
		ProductID: record.ProductID,
		Quantity:  record.Quantity,
		TotalPaid: record.TotalPaid,
	})
	if err != nil {
		return domain.PurchaseRecord{}, err
	}

	product, err := r.productPayload(ctx, created.ProductID)
	if err != nil {
		return domain.PurchaseRecord{}, err
	}

	return domain.PurchaseRecord{
		ID:        created.ID,
		TouristID: created.TouristID,
		ProductID: created.ProductID,
		Quantity:  created.Quantity,
		TotalPaid: created.TotalPaid,
		Product:   product,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *TouristRepository) HasPurchased(ctx context.Context, touristID, productID uint) (bool, error) {
	return r.dao.HasPurchased(ctx, touristID, productID)
}

func (r *TouristRepository) FindPurchases(ctx context.Context, touristID uint) ([]domain.PurchaseRecord, error) {
	found, err := r.dao.FindPurchases(ctx, touristID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.PurchaseRecord, len(found))
	for i, rec := range found {
		product, err := r.productPayload(ctx, rec.ProductID)
		if err != nil {
			return nil, err
		}

		records[i] = domain.PurchaseRecord{
			ID:        rec.ID,
			TouristID: rec.TouristID,
			ProductID: rec.ProductID,
			Quantity:  rec.Quantity,
			TotalPaid: rec.TotalPaid,
			Product:   product,
			CreatedAt: rec.CreatedAt,
		}
	}

	return records, nil
}
