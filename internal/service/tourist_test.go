package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

type stubTouristRepo struct {
	wishlisted map[uint]bool
	cart       map[uint]domain.CartItem
	purchases  []domain.PurchaseRecord
	stock      map[uint]int
}

func newStubTouristRepo() *stubTouristRepo {
	return &stubTouristRepo{
		wishlisted: map[uint]bool{},
		cart:       map[uint]domain.CartItem{},
		stock:      map[uint]int{},
	}
}

func (r *stubTouristRepo) ToggleWishlist(_ context.Context, _, productID uint) (bool, error) {
	r.wishlisted[productID] = !r.wishlisted[productID]

	return r.wishlisted[productID], nil
}

func (r *stubTouristRepo) FindWishlist(_ context.Context, touristID uint) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	for id, on := range r.wishlisted {
		if on {
			items = append(items, domain.WishlistItem{TouristID: touristID, ProductID: id})
		}
	}

	return items, nil
}

func (r *stubTouristRepo) AddToCart(_ context.Context, touristID, productID uint, quantity int) (domain.CartItem, error) {
	item := r.cart[productID]
	item.TouristID = touristID
	item.ProductID = productID
	item.Quantity += quantity
	r.cart[productID] = item

	return item, nil
}

func (r *stubTouristRepo) FindCart(_ context.Context, _ uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, item := range r.cart {
		items = append(items, item)
	}

	return items, nil
}

func (r *stubTouristRepo) RecordPurchase(_ context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	if r.stock[record.ProductID] < record.Quantity {
		return domain.PurchaseRecord{}, repository.ErrInsufficientStock
	}
	r.stock[record.ProductID] -= record.Quantity
	delete(r.cart, record.ProductID)

	record.ID = uint(len(r.purchases) + 1)
	r.purchases = append(r.purchases, record)

	return record, nil
}

func (r *stubTouristRepo) HasPurchased(_ context.Context, touristID, productID uint) (bool, error) {
	for _, p := range r.purchases {
		if p.TouristID == touristID && p.ProductID == productID {
			return true, nil
		}
	}

	return false, nil
}

func (r *stubTouristRepo) FindPurchases(_ context.Context, touristID uint) ([]domain.PurchaseRecord, error) {
	var records []domain.PurchaseRecord
	for _, p := range r.purchases {
		if p.TouristID == touristID {
			records = append(records, p)
		}
	}

	return records, nil
}

func newTouristFixture() (*TouristService, *stubTouristRepo) {
	repo := newStubTouristRepo()
	repo.stock[1] = 10

	products := &stubProductRepo{products: map[uint]domain.Product{
		1: {ID: 1, Name: "Scarab Amulet", Price: 12.50},
	}}

	return NewTouristService(repo, products), repo
}

func TestTouristService_ToggleWishlist(t *testing.T) {
	svc, _ := newTouristFixture()
	ctx := context.Background()

	wishlisted, err := svc.ToggleWishlist(ctx, 42, 1)
	require.NoError(t, err)
	assert.True(t, wishlisted)

	wishlisted, err = svc.ToggleWishlist(ctx, 42, 1)
	require.NoError(t, err)
	assert.False(t, wishlisted)

	_, err = svc.ToggleWishlist(ctx, 42, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestTouristService_AddToCart(t *testing.T) {
	svc, _ := newTouristFixture()
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, 42, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	item, err = svc.AddToCart(ctx, 42, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	_, err = svc.AddToCart(ctx, 42, 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestTouristService_Purchase(t *testing.T) {
	svc, repo := newTouristFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 42, 1, 2)
	require.NoError(t, err)

	record, err := svc.Purchase(ctx, 42, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 25.00, record.TotalPaid, 0.001)
	assert.Empty(t, repo.cart)
	assert.Equal(t, 8, repo.stock[1])

	purchased, err := svc.HasPurchased(ctx, 42, 1)
	require.NoError(t, err)
	assert.True(t, purchased)

	history, err := svc.GetHistory(ctx, 42)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Quantity)
}

func TestTouristService_Purchase_InsufficientStock(t *testing.T) {
	svc, _ := newTouristFixture()
	ctx := context.Background()

	_, err := svc.Purchase(ctx, 42, 1, 50)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = svc.Purchase(ctx, 42, 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
