package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tourista-api/internal/api/middleware"
	"github.com/vietanh2810/tourista-api/internal/config"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Sign up a new user
// @Description  Creates a tourist, seller or admin account and returns a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      request.SignupRequest  true  "User details"
// @Success      201    {object}  response.Auth
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user := domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	}

	created, err := h.svc.Signup(ctx.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.renderAuth(ctx, http.StatusCreated, created)
}

// HandleLogin godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      request.LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Auth
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid email or password"))
			return
		}

		err = fmt.Errorf("HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.renderAuth(ctx, http.StatusOK, user)
}

func (h *AuthHandler) renderAuth(ctx *gin.Context, status int, user domain.User) {
	token, err := createToken(h.conf.JWTSigningKey, user)
	if err != nil {
		err = fmt.Errorf("renderAuth -> createToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(status, response.Auth{
		Token: token,
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}

func createToken(signingKey string, user domain.User) (string, error) {
	claims := middleware.UserClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(signingKey))
}
