package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type ActivityService interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
}

type TouristHandler struct {
	tSvc TouristService
	rSvc ReviewService
	aSvc ActivityService
	uSvc UserService
}

func NewTouristHandler(tSvc TouristService, rSvc ReviewService, aSvc ActivityService, uSvc UserService) *TouristHandler {
	return &TouristHandler{
		tSvc: tSvc,
		rSvc: rSvc,
		aSvc: aSvc,
		uSvc: uSvc,
	}
}

// HandleGetHistory godoc
// @Summary      Get a tourist's purchase history
// @Description  Returns purchase records newest first, each embedding the product as sold
// @Tags         tourists
// @Produce      json
// @Param        userID  path  int  true  "Tourist user ID"
// @Success      200  {array}  domain.PurchaseRecord
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tourist/touristHistory/{userID} [get]
// @Security     BearerAuth
func (h *TouristHandler) HandleGetHistory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, err := parseUintParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if user.ID != userID && !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot read history of user %v", user.ID, userID)))
		return
	}

	records, err := h.tSvc.GetHistory(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("HandleGetHistory -> h.tSvc.GetHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// HandleCreateActivityReview godoc
// @Summary      Review an activity
// @Description  Appends a review and recomputes the activity's average rating. No purchase gate applies to activities.
// @Tags         tourists,reviews
// @Accept       json
// @Produce      json
// @Param        activityID  path  int  true  "Activity ID"
// @Param        input  body      request.CreateReviewRequest  true  "Review"
// @Success      201  {object}  domain.Review
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tourist/activities/{activityID}/reviews [post]
// @Security     BearerAuth
func (h *TouristHandler) HandleCreateActivityReview(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activityID, err := parseUintParam(ctx, "activityID")
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

	target := domain.ReviewTarget{Kind: domain.ReviewTargetActivity, ID: activityID}
	review := domain.Review{
		Reviewer: user.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	created, err := h.rSvc.SubmitReview(ctx.Request.Context(), target, user.ID, review)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
		case errors.Is(err, service.ErrInvalidReview):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateActivityReview -> h.rSvc.SubmitReview -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListActivities godoc
// @Summary      List activities
// @Tags         tourists
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      500  {object}  response.Err
// @Router       /tourist/activities [get]
func (h *TouristHandler) HandleListActivities(ctx *gin.Context) {
	activities, err := h.aSvc.ListActivities(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListActivities -> h.aSvc.ListActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
// @Summary      Get an activity
// @Description  Retrieves an activity with its reviews
// @Tags         tourists
// @Produce      json
// @Param        activityID  path  int  true  "Activity ID"
// @Success      200  {object}  domain.Activity
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tourist/activities/{activityID} [get]
func (h *TouristHandler) HandleGetActivity(ctx *gin.Context) {
	activityID, err := parseUintParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.aSvc.GetActivity(ctx.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleGetActivity -> h.aSvc.GetActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Description  Admin only
// @Tags         tourists
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveActivityRequest  true  "Activity details"
// @Success      201  {object}  domain.Activity
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tourist/activities [post]
// @Security     BearerAuth
func (h *TouristHandler) HandleCreateActivity(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot create activities", user.ID)))
		return
	}

	var req request.SaveActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.aSvc.CreateActivity(ctx.Request.Context(), domain.Activity{
		Name:     req.Name,
		Location: req.Location,
		Price:    req.Price,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateActivity -> h.aSvc.CreateActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
