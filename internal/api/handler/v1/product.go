package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type ProductService interface {
	ListProducts(ctx context.Context, criteria catalog.Criteria) ([]domain.Product, error)
	ListAllProducts(ctx context.Context, criteria catalog.Criteria) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	ToggleArchive(ctx context.Context, id uint) (domain.Product, error)
}

type TouristService interface {
	ToggleWishlist(ctx context.Context, touristID, productID uint) (bool, error)
	GetWishlist(ctx context.Context, touristID uint) ([]domain.WishlistItem, error)
	AddToCart(ctx context.Context, touristID, productID uint, quantity int) (domain.CartItem, error)
	GetCart(ctx context.Context, touristID uint) ([]domain.CartItem, error)
	Purchase(ctx context.Context, touristID, productID uint, quantity int) (domain.PurchaseRecord, error)
	HasPurchased(ctx context.Context, touristID, productID uint) (bool, error)
	GetHistory(ctx context.Context, touristID uint) ([]domain.PurchaseRecord, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, target domain.ReviewTarget, userID uint, review domain.Review) (domain.Review, error)
}

type ProductHandler struct {
	svc  ProductService
	tSvc TouristService
	rSvc ReviewService
	uSvc UserService
}

func NewProductHandler(svc ProductService, tSvc TouristService, rSvc ReviewService, uSvc UserService) *ProductHandler {
	return &ProductHandler{
		svc:  svc,
		tSvc: tSvc,
		rSvc: rSvc,
		uSvc: uSvc,
	}
}

// requireSelfOrAdmin checks that the authenticated user matches the userID
// path parameter, or is an admin.
func (h *ProductHandler) requireSelfOrAdmin(ctx *gin.Context) (uint, bool) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, false
	}

	userID, err := parseUintParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, false
	}

	if user.ID != userID && !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot act for user %v", user.ID, userID)))
		return 0, false
	}

	return userID, true
}

// HandleListProducts godoc
// @Summary      List products
// @Description  Tourist-facing listing. Archived products are always excluded. Supports search, numeric filter and sort.
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Substring matched against name, description and seller"
// @Param        filterBy  query  string  false  "price, quantity or rating"
// @Param        value     query  number  false  "Bound for filterBy"
// @Param        sortBy    query  string  false  "name, price or rating"
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /products [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context(), parseCriteria(ctx))
	if err != nil {
		err = fmt.Errorf("HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleListAllProducts godoc
// @Summary      List all products
// @Description  Seller/admin listing, archived products included
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/all [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleListAllProducts(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.CanManageProducts() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot list archived products", user.ID)))
		return
	}

	products, err := h.svc.ListAllProducts(ctx.Request.Context(), parseCriteria(ctx))
	if err != nil {
		err = fmt.Errorf("HandleListAllProducts -> h.svc.ListAllProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleCreateProduct godoc
// @Summary      Create a product
// @Description  Creates a product owned by the authenticated seller or admin
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveProductRequest  true  "Product details"
// @Success      201  {object}  domain.Product
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products [post]
// @Security     BearerAuth
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.CanManageProducts() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot create products", user.ID)))
		return
	}

	var req request.SaveProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	seller := req.Seller
	if seller == "" {
		seller = user.Name
	}

	product := domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		Description: req.Description,
		Seller:      seller,
		OwnerID:     user.ID,
	}

	created, err := h.svc.CreateProduct(ctx.Request.Context(), product)
	if err != nil {
		err = fmt.Errorf("HandleCreateProduct -> h.svc.CreateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetProduct godoc
// @Summary      Get a product
// @Description  Retrieves a product with its reviews
// @Tags         products
// @Produce      json
// @Param        productID  path  int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	productID, err := parseUintParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}

		err = fmt.Errorf("HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Description  Replaces the whole product document. Seller or admin.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productID  path  int  true  "Product ID"
// @Param        input  body      request.SaveProductRequest  true  "Product details"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/{productID} [put]
// @Security     BearerAuth
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.CanManageProducts() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot update products", user.ID)))
		return
	}

	productID, err := parseUintParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SaveProductRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Full-document PUT keeps the stored counters; only the editable
	// fields come from the request.
	existing, err := h.svc.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}

		err = fmt.Errorf("HandleUpdateProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	existing.Name = req.Name
	existing.Price = req.Price
	existing.Quantity = req.Quantity
	existing.Image = req.Image
	existing.Description = req.Description
	if req.Seller != "" {
		existing.Seller = req.Seller
	}
	existing.Reviews = nil

	updated, err := h.svc.UpdateProduct(ctx.Request.Context(), existing)
	if err != nil {
		err = fmt.Errorf("HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleToggleArchive godoc
// @Summary      Toggle a product's archived flag
// @Description  Flips the archived flag. Carts, wishlists and history keep referencing the product. Seller or admin.
// @Tags         products
// @Produce      json
// @Param        productID  path  int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/{productID}/toggleArchive [patch]
// @Security     BearerAuth
func (h *ProductHandler) HandleToggleArchive(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.CanManageProducts() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot archive products", user.ID)))
		return
	}

	productID, err := parseUintParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	toggled, err := h.svc.ToggleArchive(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}

		err = fmt.Errorf("HandleToggleArchive -> h.svc.ToggleArchive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, toggled)
}

// HandleCreateProductReview godoc
// @Summary      Review a product
// @Description  Appends a review and recomputes the product's average rating. The submitting user must have purchased the product.
// @Tags         products,reviews
// @Accept       json
// @Produce      json
// @Param        productID  path  int  true  "Product ID"
// @Param        input  body      request.CreateReviewRequest  true  "Review"
// @Success      201  {object}  domain.Review
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/{productID}/reviews [post]
// @Security     BearerAuth
func (h *ProductHandler) HandleCreateProductReview(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	productID, err := parseUintParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateReviewRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	target := domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: productID}
	review := domain.Review{
		Reviewer: user.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	created, err := h.rSvc.SubmitReview(ctx.Request.Context(), target, user.ID, review)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
		case errors.Is(err, service.ErrNotPurchased):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrInvalidReview):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateProductReview -> h.rSvc.SubmitReview -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleCheckPurchase godoc
// @Summary      Check whether a user purchased a product
// @Tags         products
// @Produce      json
// @Param        userID     path  int  true  "User ID"
// @Param        productID  path  int  true  "Product ID"
// @Success      200  {object}  response.CheckPurchase
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/check-purchase/{userID}/{productID} [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleCheckPurchase(ctx *gin.Context) {
	userID, err := parseUintParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	productID, err := parseUintParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	purchased, err := h.tSvc.HasPurchased(ctx.Request.Context(), userID, productID)
	if err != nil {
		err = fmt.Errorf("HandleCheckPurchase -> h.tSvc.HasPurchased -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CheckPurchase{Purchased: purchased})
}

// HandleToggleWishlist godoc
// @Summary      Toggle a product in a tourist's wishlist
// @Tags         products,wishlist
// @Accept       json
// @Produce      json
// @Param        userID  path  int  true  "Tourist user ID"
// @Param        input   body  request.WishlistRequest  true  "Product to toggle"
// @Success      200  {object}  response.WishlistToggle
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/wishlist/{userID} [post]
// @Security     BearerAuth
func (h *ProductHandler) HandleToggleWishlist(ctx *gin.Context) {
	userID, ok := h.requireSelfOrAdmin(ctx)
	if !ok {
		return
	}

	var req request.WishlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wishlisted, err := h.tSvc.ToggleWishlist(ctx.Request.Context(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", req.ProductID))
			return
		}

		err = fmt.Errorf("HandleToggleWishlist -> h.tSvc.ToggleWishlist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.WishlistToggle{Wishlisted: wishlisted})
}

// HandleGetWishlist godoc
// @Summary      Get a tourist's wishlist
// @Tags         products,wishlist
// @Produce      json
// @Param        userID  path  int  true  "Tourist user ID"
// @Success      200  {array}  domain.WishlistItem
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/wishlist/{userID} [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleGetWishlist(ctx *gin.Context) {
	userID, ok := h.requireSelfOrAdmin(ctx)
	if !ok {
		return
	}

	items, err := h.tSvc.GetWishlist(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("HandleGetWishlist -> h.tSvc.GetWishlist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleAddToCart godoc
// @Summary      Add a product to a tourist's cart
// @Description  Adds the quantity to the cart line, creating it if absent
// @Tags         products,cart
// @Accept       json
// @Produce      json
// @Param        userID  path  int  true  "Tourist user ID"
// @Param        input   body  request.AddToCartRequest  true  "Product and quantity"
// @Success      200  {object}  domain.CartItem
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/cart/{userID} [post]
// @Security     BearerAuth
func (h *ProductHandler) HandleAddToCart(ctx *gin.Context) {
	userID, ok := h.requireSelfOrAdmin(ctx)
	if !ok {
		return
	}

	var req request.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.tSvc.AddToCart(ctx.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", req.ProductID))
			return
		}

		err = fmt.Errorf("HandleAddToCart -> h.tSvc.AddToCart -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleGetCart godoc
// @Summary      Get a tourist's cart
// @Tags         products,cart
// @Produce      json
// @Param        userID  path  int  true  "Tourist user ID"
// @Success      200  {array}  domain.CartItem
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/cart/{userID} [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleGetCart(ctx *gin.Context) {
	userID, ok := h.requireSelfOrAdmin(ctx)
	if !ok {
		return
	}

	items, err := h.tSvc.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("HandleGetCart -> h.tSvc.GetCart -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandlePurchase godoc
// @Summary      Purchase a product
// @Description  Records a purchase, decrements stock and clears the matching cart line
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        userID  path  int  true  "Tourist user ID"
// @Param        input   body  request.PurchaseRequest  true  "Product and quantity"
// @Success      201  {object}  domain.PurchaseRecord
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/purchase/{userID} [post]
// @Security     BearerAuth
func (h *ProductHandler) HandlePurchase(ctx *gin.Context) {
	userID, ok := h.requireSelfOrAdmin(ctx)
	if !ok {
		return
	}

	var req request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.tSvc.Purchase(ctx.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", req.ProductID))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandlePurchase -> h.tSvc.Purchase -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, record)
}
