package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
)

type stubProductStore struct {
	products []domain.Product
}

func (r *stubProductStore) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	product.ID = uint(len(r.products) + 1)
	r.products = append(r.products, product)

	return product, nil
}

func (r *stubProductStore) FindAll(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubProductStore) FindVisible(_ context.Context) ([]domain.Product, error) {
	var visible []domain.Product
	for _, p := range r.products {
		if !p.Archived {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

func (r *stubProductStore) FindByID(_ context.Context, id uint) (domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, ErrProductNotFound
}

func (r *stubProductStore) Update(_ context.Context, product domain.Product) (domain.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product

			return product, nil
		}
	}

	return domain.Product{}, ErrProductNotFound
}

func (r *stubProductStore) ToggleArchive(_ context.Context, id uint) (domain.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Archived = !p.Archived

			return r.products[i], nil
		}
	}

	return domain.Product{}, ErrProductNotFound
}

func newProductFixture() (*ProductService, *stubProductStore) {
	store := &stubProductStore{products: []domain.Product{
		{ID: 1, Name: "Papyrus Bookmark", Price: 5.50, Quantity: 100, AverageRating: 4.5},
		{ID: 2, Name: "Scarab Amulet", Price: 12.00, Quantity: 10, AverageRating: 2.0},
		{ID: 3, Name: "Cotton Shirt", Price: 18.00, Quantity: 50, AverageRating: 5.0, Archived: true},
	}}

	return NewProductService(store), store
}

func TestProductService_ListProducts_ExcludesArchived(t *testing.T) {
	svc, _ := newProductFixture()

	products, err := svc.ListProducts(context.Background(), catalog.Criteria{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.False(t, p.Archived)
	}
}

func TestProductService_ListAllProducts_IncludesArchived(t *testing.T) {
	svc, _ := newProductFixture()

	products, err := svc.ListAllProducts(context.Background(), catalog.Criteria{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestProductService_ListProducts_Criteria(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	products, err := svc.ListProducts(ctx, catalog.Criteria{Search: "scarab"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint(2), products[0].ID)

	products, err = svc.ListProducts(ctx, catalog.Criteria{FilterBy: catalog.FilterPrice, Value: 10})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Papyrus Bookmark", products[0].Name)

	products, err = svc.ListProducts(ctx, catalog.Criteria{SortBy: catalog.SortRating})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(2), products[1].ID)
}

func TestProductService_ToggleArchive(t *testing.T) {
	svc, store := newProductFixture()
	ctx := context.Background()

	toggled, err := svc.ToggleArchive(ctx, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Archived)

	toggled, err = svc.ToggleArchive(ctx, 1)
	require.NoError(t, err)
	assert.False(t, toggled.Archived)

	assert.False(t, store.products[0].Archived)

	_, err = svc.ToggleArchive(ctx, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
