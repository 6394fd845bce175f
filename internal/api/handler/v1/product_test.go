package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tourista-api/internal/api/middleware"
	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type stubUserService struct {
	users map[uint]domain.User
}

func (s *stubUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func (s *stubUserService) DeleteSeller(_ context.Context, id uint) error {
	user, ok := s.users[id]
	if !ok {
		return service.ErrUserNotFound
	}
	if user.Role != domain.RoleSeller {
		return service.ErrNotASeller
	}
	delete(s.users, id)

	return nil
}

type stubProductService struct {
	products []domain.Product
}

func (s *stubProductService) ListProducts(_ context.Context, _ catalog.Criteria) ([]domain.Product, error) {
	var visible []domain.Product
	for _, p := range s.products {
		if !p.Archived {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

func (s *stubProductService) ListAllProducts(_ context.Context, _ catalog.Criteria) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductService) CreateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	product.ID = uint(len(s.products) + 1)
	s.products = append(s.products, product)

	return product, nil
}

func (s *stubProductService) GetProduct(_ context.Context, id uint) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, service.ErrProductNotFound
}

func (s *stubProductService) UpdateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = product

			return product, nil
		}
	}

	return domain.Product{}, service.ErrProductNotFound
}

func (s *stubProductService) ToggleArchive(_ context.Context, id uint) (domain.Product, error) {
	for i, p := range s.products {
		if p.ID == id {
			s.products[i].Archived = !p.Archived

			return s.products[i], nil
		}
	}

	return domain.Product{}, service.ErrProductNotFound
}

type stubTouristService struct {
	purchased map[uint]bool
}

func (s *stubTouristService) ToggleWishlist(_ context.Context, _, _ uint) (bool, error) {
	return true, nil
}

func (s *stubTouristService) GetWishlist(_ context.Context, _ uint) ([]domain.WishlistItem, error) {
	return nil, nil
}

func (s *stubTouristService) AddToCart(_ context.Context, touristID, productID uint, quantity int) (domain.CartItem, error) {
	return domain.CartItem{TouristID: touristID, ProductID: productID, Quantity: quantity}, nil
}

func (s *stubTouristService) GetCart(_ context.Context, _ uint) ([]domain.CartItem, error) {
	return nil, nil
}

func (s *stubTouristService) Purchase(_ context.Context, touristID, productID uint, quantity int) (domain.PurchaseRecord, error) {
	s.purchased[productID] = true

	return domain.PurchaseRecord{TouristID: touristID, ProductID: productID, Quantity: quantity}, nil
}

func (s *stubTouristService) HasPurchased(_ context.Context, _, productID uint) (bool, error) {
	return s.purchased[productID], nil
}

func (s *stubTouristService) GetHistory(_ context.Context, _ uint) ([]domain.PurchaseRecord, error) {
	return nil, nil
}

type stubReviewService struct {
	purchased map[uint]bool
}

func (s *stubReviewService) SubmitReview(_ context.Context, target domain.ReviewTarget, _ uint, review domain.Review) (domain.Review, error) {
	if !review.IsValid() {
		return domain.Review{}, service.ErrInvalidReview
	}
	if target.Kind == domain.ReviewTargetProduct && !s.purchased[target.ID] {
		return domain.Review{}, service.ErrNotPurchased
	}

	review.ID = 1

	return review, nil
}

func setupProductRouter(authedUserID uint) (*gin.Engine, *stubProductService, *stubTouristService) {
	gin.SetMode(gin.TestMode)

	uSvc := &stubUserService{users: map[uint]domain.User{
		1: {ID: 1, Name: "Alice", Role: domain.RoleTourist},
		2: {ID: 2, Name: "Sam", Role: domain.RoleSeller},
		3: {ID: 3, Name: "Root", Role: domain.RoleAdmin},
	}}
	svc := &stubProductService{products: []domain.Product{
		{ID: 1, Name: "Papyrus Bookmark", Price: 5.50, Quantity: 100},
		{ID: 2, Name: "Scarab Amulet", Price: 12.00, Quantity: 10, Archived: true},
	}}
	purchased := map[uint]bool{}
	tSvc := &stubTouristService{purchased: purchased}
	rSvc := &stubReviewService{purchased: purchased}

	handler := NewProductHandler(svc, tSvc, rSvc, uSvc)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		if authedUserID != 0 {
			ctx.Set(middleware.ContextKeyUserID, authedUserID)
		}
	})

	router.GET("/products", handler.HandleListProducts)
	router.GET("/products/all", handler.HandleListAllProducts)
	router.POST("/products", handler.HandleCreateProduct)
	router.GET("/products/:productID", handler.HandleGetProduct)
	router.PATCH("/products/:productID/toggleArchive", handler.HandleToggleArchive)
	router.POST("/products/:productID/reviews", handler.HandleCreateProductReview)
	router.POST("/products/purchase/:userID", handler.HandlePurchase)

	return router, svc, tSvc
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestProductHandler_ListProducts_ExcludesArchived(t *testing.T) {
	router, _, _ := setupProductRouter(0)

	resp := performRequest(t, router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Papyrus Bookmark", products[0].Name)
}

func TestProductHandler_ListAllProducts_Roles(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		wantCode int
	}{
		{"unauthenticated", 0, http.StatusUnauthorized},
		{"tourist", 1, http.StatusForbidden},
		{"seller", 2, http.StatusOK},
		{"admin", 3, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := setupProductRouter(tt.userID)

			resp := performRequest(t, router, http.MethodGet, "/products/all", nil)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestProductHandler_CreateProduct_DefaultsSeller(t *testing.T) {
	router, svc, _ := setupProductRouter(2)

	resp := performRequest(t, router, http.MethodPost, "/products", gin.H{
		"name":     "Camel Figurine",
		"price":    8.0,
		"quantity": 5,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Sam", created.Seller)
	assert.Equal(t, uint(2), created.OwnerID)
	assert.Len(t, svc.products, 3)
}

func TestProductHandler_ToggleArchive(t *testing.T) {
	router, svc, _ := setupProductRouter(2)

	resp := performRequest(t, router, http.MethodPatch, "/products/1/toggleArchive", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, svc.products[0].Archived)

	resp = performRequest(t, router, http.MethodPatch, "/products/1/toggleArchive", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, svc.products[0].Archived)

	resp = performRequest(t, router, http.MethodPatch, "/products/999/toggleArchive", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestProductHandler_CreateReview_PurchaseGate(t *testing.T) {
	router, _, _ := setupProductRouter(1)

	review := gin.H{"rating": 5, "comment": "great"}

	// Not purchased yet.
	resp := performRequest(t, router, http.MethodPost, "/products/1/reviews", review)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Purchase, then review.
	resp = performRequest(t, router, http.MethodPost, "/products/purchase/1", gin.H{
		"product_id": 1,
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(t, router, http.MethodPost, "/products/1/reviews", review)
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestProductHandler_Purchase_SelfOrAdmin(t *testing.T) {
	body := gin.H{"product_id": 1, "quantity": 1}

	// A tourist cannot purchase for another user.
	router, _, _ := setupProductRouter(1)
	resp := performRequest(t, router, http.MethodPost, "/products/purchase/2", body)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// An admin can.
	router, _, _ = setupProductRouter(3)
	resp = performRequest(t, router, http.MethodPost, "/products/purchase/1", body)
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	router, _, _ := setupProductRouter(0)

	resp := performRequest(t, router, http.MethodGet, "/products/999", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "product")
}
