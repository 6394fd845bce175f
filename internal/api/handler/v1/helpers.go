package v1

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tourista-api/internal/api/middleware"
	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	DeleteSeller(ctx context.Context, id uint) error
}

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized("missing user in context")
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("invalid user in context")
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(fmt.Sprintf("unknown user %v", userID))
	}

	return user, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(value), nil
}

// parseCriteria reads the listing query parameters shared by the museum and
// product catalogs: search, filterBy, value, sortBy.
func parseCriteria(ctx *gin.Context) catalog.Criteria {
	criteria := catalog.Criteria{
		Search:   ctx.Query("search"),
		FilterBy: catalog.ParseFilterKey(ctx.Query("filterBy")),
		SortBy:   catalog.ParseSortKey(ctx.Query("sortBy")),
	}

	if raw := ctx.Query("value"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.Value = v
		} else {
			criteria.FilterBy = catalog.FilterNone
		}
	} else {
		criteria.FilterBy = catalog.FilterNone
	}

	return criteria
}
