package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/tourista-api/docs"
	v1 "github.com/vietanh2810/tourista-api/internal/api/handler/v1"
	"github.com/vietanh2810/tourista-api/internal/api/middleware"
	"github.com/vietanh2810/tourista-api/internal/config"
	"github.com/vietanh2810/tourista-api/internal/payment"
	"github.com/vietanh2810/tourista-api/internal/repository"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	museumHandler := s.initMuseumHandler(db)
	tagHandler := s.initTagHandler(db)
	productHandler := s.initProductHandler(db)
	touristHandler := s.initTouristHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	s.MountHandlers(authHandler, userHandler, museumHandler, tagHandler, productHandler, touristHandler, paymentHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initMuseumHandler(db *gorm.DB) *v1.MuseumHandler {
	museumDAO := dao.NewMuseumDAO(db)
	repo := repository.NewMuseumRepository(museumDAO)
	svc := service.NewMuseumService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewMuseumHandler(svc, uSvc)

	return handler
}

func (s *Server) initTagHandler(db *gorm.DB) *v1.TagHandler {
	tagDAO := dao.NewTagDAO(db)
	repo := repository.NewTagRepository(tagDAO)
	svc := service.NewTagService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewTagHandler(svc, uSvc)

	return handler
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	productDAO := dao.NewProductDAO(db)
	reviewDAO := dao.NewReviewDAO(db)
	productRepo := repository.NewProductRepository(productDAO, reviewDAO)
	touristRepo := repository.NewTouristRepository(dao.NewTouristDAO(db), productDAO)
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db), reviewDAO)
	reviewRepo := repository.NewReviewRepository(reviewDAO)

	svc := service.NewProductService(productRepo)
	tSvc := service.NewTouristService(touristRepo, productRepo)
	rSvc := service.NewReviewService(reviewRepo, productRepo, activityRepo, touristRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewProductHandler(svc, tSvc, rSvc, uSvc)

	return handler
}

func (s *Server) initTouristHandler(db *gorm.DB) *v1.TouristHandler {
	productDAO := dao.NewProductDAO(db)
	reviewDAO := dao.NewReviewDAO(db)
	productRepo := repository.NewProductRepository(productDAO, reviewDAO)
	touristRepo := repository.NewTouristRepository(dao.NewTouristDAO(db), productDAO)
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db), reviewDAO)
	reviewRepo := repository.NewReviewRepository(reviewDAO)

	tSvc := service.NewTouristService(touristRepo, productRepo)
	rSvc := service.NewReviewService(reviewRepo, productRepo, activityRepo, touristRepo)
	aSvc := service.NewActivityService(activityRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewTouristHandler(tSvc, rSvc, aSvc, uSvc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	client := payment.NewClient(s.Config.Stripe)
	svc := service.NewPaymentService(client)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewPaymentHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	museumHandler *v1.MuseumHandler,
	tagHandler *v1.TagHandler,
	productHandler *v1.ProductHandler,
	touristHandler *v1.TouristHandler,
	paymentHandler *v1.PaymentHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	public := s.Router.Group(basePath)
	{
		public.GET("/museums", museumHandler.HandleListMuseums)
		public.GET("/museum-tags", tagHandler.HandleListMuseumTags)
		public.GET("/preference-tags", tagHandler.HandleListPreferenceTags)
		public.GET("/products", productHandler.HandleListProducts)
		public.GET("/products/:productID", productHandler.HandleGetProduct)
		public.GET("/tourist/activities", touristHandler.HandleListActivities)
		public.GET("/tourist/activities/:activityID", touristHandler.HandleGetActivity)
	}

	protected := s.Router.Group(basePath, verifyJWT)
	{
		protected.GET("/users/:userID", userHandler.HandleGetUser)
		protected.DELETE("/seller-delete/:id", userHandler.HandleDeleteSeller)

		protected.POST("/museums", museumHandler.HandleCreateMuseum)
		protected.GET("/museums/:museumID", museumHandler.HandleGetMuseum)
		protected.PUT("/museums/:museumID", museumHandler.HandleUpdateMuseum)
		protected.DELETE("/museums/:museumID", museumHandler.HandleDeleteMuseum)

		protected.POST("/museum-tags", tagHandler.HandleCreateMuseumTag)
		protected.DELETE("/museum-tags/:tagID", tagHandler.HandleDeleteMuseumTag)
		protected.POST("/preference-tags", tagHandler.HandleCreatePreferenceTag)
		protected.PUT("/preference-tags/:tagID", tagHandler.HandleUpdatePreferenceTag)
		protected.DELETE("/preference-tags/:tagID", tagHandler.HandleDeletePreferenceTag)

		protected.GET("/products/all", productHandler.HandleListAllProducts)
		protected.POST("/products", productHandler.HandleCreateProduct)
		protected.PUT("/products/:productID", productHandler.HandleUpdateProduct)
		protected.PATCH("/products/:productID/toggleArchive", productHandler.HandleToggleArchive)
		protected.POST("/products/:productID/reviews", productHandler.HandleCreateProductReview)
		protected.GET("/products/check-purchase/:userID/:productID", productHandler.HandleCheckPurchase)
		protected.POST("/products/wishlist/:userID", productHandler.HandleToggleWishlist)
		protected.GET("/products/wishlist/:userID", productHandler.HandleGetWishlist)
		protected.POST("/products/cart/:userID", productHandler.HandleAddToCart)
		protected.GET("/products/cart/:userID", productHandler.HandleGetCart)
		protected.POST("/products/purchase/:userID", productHandler.HandlePurchase)

		protected.GET("/tourist/touristHistory/:userID", touristHandler.HandleGetHistory)
		protected.POST("/tourist/activities", touristHandler.HandleCreateActivity)
		protected.POST("/tourist/activities/:activityID/reviews", touristHandler.HandleCreateActivityReview)

		protected.POST("/payments/card", paymentHandler.HandleCardPayment)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Tourista API"
	docs.SwaggerInfo.Description = "Tourism and e-commerce REST API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
