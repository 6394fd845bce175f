package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tourista-api/internal/api/middleware"
	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type stubMuseumService struct {
	museums []domain.Museum
}

func (s *stubMuseumService) ListMuseums(_ context.Context, _ catalog.Criteria) ([]domain.Museum, error) {
	return s.museums, nil
}

func (s *stubMuseumService) CreateMuseum(_ context.Context, museum domain.Museum) (domain.Museum, error) {
	museum.ID = uint(len(s.museums) + 1)
	museum.CreatedAt = time.Now()
	s.museums = append(s.museums, museum)

	return museum, nil
}

func (s *stubMuseumService) GetMuseum(_ context.Context, id uint) (domain.Museum, error) {
	for _, m := range s.museums {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Museum{}, service.ErrMuseumNotFound
}

func (s *stubMuseumService) UpdateMuseum(_ context.Context, museum domain.Museum) (domain.Museum, error) {
	for i, m := range s.museums {
		if m.ID == museum.ID {
			s.museums[i] = museum

			return museum, nil
		}
	}

	return domain.Museum{}, service.ErrMuseumNotFound
}

func (s *stubMuseumService) DeleteMuseum(_ context.Context, id uint) error {
	for i, m := range s.museums {
		if m.ID == id {
			s.museums = append(s.museums[:i], s.museums[i+1:]...)

			return nil
		}
	}

	return service.ErrMuseumNotFound
}

func setupMuseumRouter(authedUserID uint, museums []domain.Museum) (*gin.Engine, *stubMuseumService) {
	gin.SetMode(gin.TestMode)

	uSvc := &stubUserService{users: map[uint]domain.User{
		1: {ID: 1, Name: "Alice", Role: domain.RoleTourist},
		3: {ID: 3, Name: "Root", Role: domain.RoleAdmin},
	}}
	svc := &stubMuseumService{museums: museums}

	handler := NewMuseumHandler(svc, uSvc)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		if authedUserID != 0 {
			ctx.Set(middleware.ContextKeyUserID, authedUserID)
		}
	})

	router.GET("/museums", handler.HandleListMuseums)
	router.POST("/museums", handler.HandleCreateMuseum)
	router.GET("/museums/:museumID", handler.HandleGetMuseum)
	router.PUT("/museums/:museumID", handler.HandleUpdateMuseum)
	router.DELETE("/museums/:museumID", handler.HandleDeleteMuseum)

	return router, svc
}

func TestMuseumHandler_CreateMuseum_SetsRating(t *testing.T) {
	router, _ := setupMuseumRouter(3, nil)

	body := gin.H{
		"name":     "Grand Egyptian Museum",
		"location": "Giza",
		"rating":   4.5,
		"ticket_prices": gin.H{
			"foreigner": 20.0,
			"native":    5.0,
			"student":   2.5,
		},
	}
	resp := performRequest(t, router, http.MethodPost, "/museums", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created domain.Museum
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Grand Egyptian Museum", created.Name)
	assert.InDelta(t, 4.5, created.Rating, 0.001)
}

func TestMuseumHandler_CreateMuseum_RejectsOutOfRangeRating(t *testing.T) {
	router, _ := setupMuseumRouter(3, nil)

	body := gin.H{
		"name":     "Grand Egyptian Museum",
		"location": "Giza",
		"rating":   5.5,
	}
	resp := performRequest(t, router, http.MethodPost, "/museums", body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMuseumHandler_UpdateMuseum_KeepsStoredFields(t *testing.T) {
	createdAt := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	router, svc := setupMuseumRouter(3, []domain.Museum{
		{
			ID:        9,
			Name:      "Coptic Museum",
			Location:  "Cairo",
			Rating:    4.5,
			CreatedAt: createdAt,
		},
	})

	body := gin.H{
		"name":     "Coptic Museum",
		"location": "Old Cairo",
	}
	resp := performRequest(t, router, http.MethodPut, "/museums/9", body)
	require.Equal(t, http.StatusOK, resp.Code)

	stored := svc.museums[0]
	assert.Equal(t, "Old Cairo", stored.Location)
	assert.InDelta(t, 4.5, stored.Rating, 0.001)
	assert.True(t, stored.CreatedAt.Equal(createdAt))
}

func TestMuseumHandler_UpdateMuseum_SetsRating(t *testing.T) {
	router, svc := setupMuseumRouter(3, []domain.Museum{
		{ID: 9, Name: "Coptic Museum", Location: "Cairo", Rating: 4.5},
	})

	body := gin.H{
		"name":     "Coptic Museum",
		"location": "Cairo",
		"rating":   3.5,
	}
	resp := performRequest(t, router, http.MethodPut, "/museums/9", body)
	require.Equal(t, http.StatusOK, resp.Code)

	assert.InDelta(t, 3.5, svc.museums[0].Rating, 0.001)
}

func TestMuseumHandler_UpdateMuseum_NotFound(t *testing.T) {
	router, _ := setupMuseumRouter(3, nil)

	body := gin.H{
		"name":     "Coptic Museum",
		"location": "Cairo",
	}
	resp := performRequest(t, router, http.MethodPut, "/museums/404", body)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMuseumHandler_DeleteMuseum_ThenFetchReturns404(t *testing.T) {
	router, _ := setupMuseumRouter(3, []domain.Museum{
		{ID: 5, Name: "Luxor Museum", Location: "Luxor"},
	})

	resp := performRequest(t, router, http.MethodDelete, "/museums/5", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(t, router, http.MethodGet, "/museums/5", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(t, router, http.MethodDelete, "/museums/5", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMuseumHandler_CreateMuseum_RequiresAdmin(t *testing.T) {
	router, _ := setupMuseumRouter(1, nil)

	body := gin.H{
		"name":     "Grand Egyptian Museum",
		"location": "Giza",
	}
	resp := performRequest(t, router, http.MethodPost, "/museums", body)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}
