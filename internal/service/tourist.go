package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var ErrInsufficientStock = repository.ErrInsufficientStock

type TouristRepository interface {
	ToggleWishlist(ctx context.Context, touristID, productID uint) (bool, error)
	FindWishlist(ctx context.Context, touristID uint) ([]domain.WishlistItem, error)
	AddToCart(ctx context.Context, touristID, productID uint, quantity int) (domain.CartItem, error)
	FindCart(ctx context.Context, touristID uint) ([]domain.CartItem, error)
	RecordPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error)
	HasPurchased(ctx context.Context, touristID, productID uint) (bool, error)
	FindPurchases(ctx context.Context, touristID uint) ([]domain.PurchaseRecord, error)
}

type TouristProductRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
}

type TouristService struct {
	repo        TouristRepository
	productRepo TouristProductRepository
}

func NewTouristService(repo TouristRepository, productRepo TouristProductRepository) *TouristService {
	return &TouristService{
		repo:        repo,
		productRepo: productRepo,
	}
}

func (s *TouristService) findProduct(ctx context.Context, productID uint) (domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}

		return domain.Product{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
	}

	return product, nil
}

// ToggleWishlist adds or removes the product from the tourist's wishlist.
// Returns whether the product is wishlisted afterwards.
func (s *TouristService) ToggleWishlist(ctx context.Context, touristID, productID uint) (bool, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return false, err
	}

	wishlisted, err := s.repo.ToggleWishlist(ctx, touristID, productID)
	if err != nil {
		return false, fmt.Errorf("s.repo.ToggleWishlist -> %w", err)
	}

	return wishlisted, nil
}

func (s *TouristService) GetWishlist(ctx context.Context, touristID uint) ([]domain.WishlistItem, error) {
	items, err := s.repo.FindWishlist(ctx, touristID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindWishlist -> %w", err)
	}

	return items, nil
}

func (s *TouristService) AddToCart(ctx context.Context, touristID, productID uint, quantity int) (domain.CartItem, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return domain.CartItem{}, err
	}

	item, err := s.repo.AddToCart(ctx, touristID, productID, quantity)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.repo.AddToCart -> %w", err)
	}

	return item, nil
}

func (s *TouristService) GetCart(ctx context.Context, touristID uint) ([]domain.CartItem, error) {
	items, err := s.repo.FindCart(ctx, touristID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindCart -> %w", err)
	}

	return items, nil
}

// Purchase records a purchase of the product at its current price. Stock is
// decremented and the matching cart line cleared atomically by the
// repository.
func (s *TouristService) Purchase(ctx context.Context, touristID, productID uint, quantity int) (domain.PurchaseRecord, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return domain.PurchaseRecord{}, err
	}

	record, err := s.repo.RecordPurchase(ctx, domain.PurchaseRecord{
		TouristID: touristID,
		ProductID: productID,
		Quantity:  quantity,
		TotalPaid: product.Price * float64(quantity),
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return domain.PurchaseRecord{}, ErrInsufficientStock
		}

		return domain.PurchaseRecord{}, fmt.Errorf("s.repo.RecordPurchase -> %w", err)
	}

	return record, nil
}

func (s *TouristService) HasPurchased(ctx context.Context, touristID, productID uint) (bool, error) {
	purchased, err := s.repo.HasPurchased(ctx, touristID, productID)
	if err != nil {
		return false, fmt.Errorf("s.repo.HasPurchased -> %w", err)
	}

	return purchased, nil
}

func (s *TouristService) GetHistory(ctx context.Context, touristID uint) ([]domain.PurchaseRecord, error) {
	records, err := s.repo.FindPurchases(ctx, touristID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPurchases -> %w", err)
	}

	return records, nil
}
